package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"machinehub/internal/model"
	"machinehub/internal/service"
)

// EnquiryHandler serves buyer enquiries.
type EnquiryHandler struct {
	enquiries service.EnquiryService
}

// NewEnquiryHandler creates a new enquiry handler.
func NewEnquiryHandler(enquiries service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// EnquiryResponse wraps an enquiry with a message.
type EnquiryResponse struct {
	Message string         `json:"message"`
	Enquiry *model.Enquiry `json:"enquiry"`
}

// CreateEnquiry godoc
// @Summary Send an enquiry about a machine
// @Tags enquiries
// @Accept json
// @Produce json
// @Param id path int true "Machine ID"
// @Param request body service.EnquiryInput true "Enquiry"
// @Success 201 {object} EnquiryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines/{id}/enquiries [post]
func (h *EnquiryHandler) CreateEnquiry(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	machineID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req service.EnquiryInput
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	enquiry, err := h.enquiries.Create(c.Request().Context(), actor.User.ID, machineID, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, EnquiryResponse{
		Message: "Enquiry sent successfully! The supplier will contact you soon.",
		Enquiry: enquiry,
	})
}

// ListEnquiries godoc
// @Summary Enquiries received on the caller's machines
// @Tags enquiries
// @Produce json
// @Success 200 {array} model.Enquiry
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /enquiries [get]
func (h *EnquiryHandler) ListEnquiries(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	enquiries, err := h.enquiries.ListForSupplier(c.Request().Context(), actor.User.ID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, enquiries)
}
