package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"machinehub/internal/service"
)

const profileImageField = "profile_image"

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profiles    service.ProfileService
	authService service.AuthService
	cookie      SessionCookie
	log         *zap.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles service.ProfileService, authService service.AuthService, cookie SessionCookie, log *zap.Logger) *ProfileHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileHandler{profiles: profiles, authService: authService, cookie: cookie, log: log}
}

// GetProfile godoc
// @Summary Show the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} service.ProfileView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	view, err := h.profiles.Get(c.Request().Context(), actor.User.ID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateProfile godoc
// @Summary Edit the caller's profile
// @Description Accepts JSON, or multipart form data with an optional profile_image file.
// @Tags profile
// @Accept json,mpfd
// @Produce json
// @Param request body service.ProfileUpdate false "Profile fields"
// @Param profile_image formData file false "New profile picture"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var (
		upd   service.ProfileUpdate
		image *service.ImageUpload
	)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		var closeImage func()
		upd, image, closeImage, err = readProfileForm(c)
		if err != nil {
			return err
		}
		defer closeImage()
	} else if err := c.Bind(&upd); err != nil {
		return badRequest("invalid request body")
	}

	ctx := c.Request().Context()
	user, err := h.profiles.Update(ctx, actor.User.ID, upd, image)
	if err != nil {
		return fail(err)
	}

	// the session carries name and picture, so replace it with one built from the saved user
	session, err := h.authService.StartSession(user)
	if err != nil {
		return fail(err)
	}
	if err := h.authService.Logout(ctx, h.cookie.token(c)); err != nil {
		h.log.Warn("revoke replaced session", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	h.cookie.set(c, session)

	return c.JSON(http.StatusOK, UserResponse{Message: "Profile updated successfully!", User: user})
}

func readProfileForm(c echo.Context) (service.ProfileUpdate, *service.ImageUpload, func(), error) {
	var upd service.ProfileUpdate
	noop := func() {}

	form, err := c.MultipartForm()
	if err != nil {
		return upd, nil, noop, badRequest("invalid multipart form")
	}

	field := func(name string) *string {
		values, ok := form.Value[name]
		if !ok || len(values) == 0 {
			return nil
		}
		v := values[0]
		return &v
	}
	upd.Name = field("name")
	upd.CompanyName = field("company_name")
	upd.City = field("city")
	upd.Industry = field("industry")
	upd.Phone = field("phone")

	header, err := c.FormFile(profileImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return upd, nil, noop, nil
	}
	if err != nil {
		return upd, nil, noop, badRequest("invalid profile image")
	}
	file, err := header.Open()
	if err != nil {
		return upd, nil, noop, badRequest("invalid profile image")
	}
	image := &service.ImageUpload{Filename: header.Filename, Size: header.Size, Content: file}
	return upd, image, func() { _ = file.Close() }, nil
}
