package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"machinehub/internal/auth"
	"machinehub/internal/model"
	"machinehub/internal/repository"
	"machinehub/internal/service"
)

// MachineHandler serves machine listings.
type MachineHandler struct {
	machines service.MachineService
}

// NewMachineHandler creates a new machine handler.
func NewMachineHandler(machines service.MachineService) *MachineHandler {
	return &MachineHandler{machines: machines}
}

// MachineResponse wraps a machine with a message.
type MachineResponse struct {
	Message string         `json:"message"`
	Machine *model.Machine `json:"machine"`
}

// ListMachines godoc
// @Summary List machines
// @Description Newest first. Category matches exactly; search matches name or description, ignoring case.
// @Tags machines
// @Produce json
// @Param category query string false "Category"
// @Param search query string false "Search text"
// @Success 200 {object} service.MachineListing
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines [get]
func (h *MachineHandler) ListMachines(c echo.Context) error {
	listing, err := h.machines.List(c.Request().Context(), repository.MachineFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, listing)
}

// Featured godoc
// @Summary Newest machines for the home page
// @Tags machines
// @Produce json
// @Success 200 {array} model.Machine
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines/featured [get]
func (h *MachineHandler) Featured(c echo.Context) error {
	machines, err := h.machines.Featured(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, machines)
}

// GetMachine godoc
// @Summary Machine detail
// @Description Enquiries are listed only for the owning supplier; other callers get enquiry_count.
// @Tags machines
// @Produce json
// @Param id path int true "Machine ID"
// @Success 200 {object} service.MachineDetail
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines/{id} [get]
func (h *MachineHandler) GetMachine(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var viewer *model.User
	if actor, ok := auth.ActorFromContext(c.Request().Context()); ok {
		viewer = actor.User
	}

	detail, err := h.machines.Get(c.Request().Context(), id, viewer)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateMachine godoc
// @Summary List a new machine
// @Tags machines
// @Accept json
// @Produce json
// @Param request body service.MachineInput true "Machine"
// @Success 201 {object} MachineResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines [post]
func (h *MachineHandler) CreateMachine(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req service.MachineInput
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	machine, err := h.machines.Create(c.Request().Context(), actor.User.ID, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, MachineResponse{Message: "Machine added successfully!", Machine: machine})
}

// UpdateMachine godoc
// @Summary Edit an own machine
// @Tags machines
// @Accept json
// @Produce json
// @Param id path int true "Machine ID"
// @Param request body service.MachineInput true "Machine"
// @Success 200 {object} MachineResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /machines/{id} [put]
func (h *MachineHandler) UpdateMachine(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req service.MachineInput
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	machine, err := h.machines.Update(c.Request().Context(), actor.User.ID, id, req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MachineResponse{Message: "Machine updated successfully!", Machine: machine})
}
