package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"machinehub/internal/model"
	"machinehub/internal/service"
)

// AuthHandler handles registration, login and session endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookie      SessionCookie
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserResponse wraps a user with a message.
type UserResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// SessionResponse describes the caller's session.
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	UserID        uint       `json:"user_id,omitempty"`
	Name          string     `json:"name,omitempty"`
	Role          model.Role `json:"role,omitempty"`
	ProfileImage  string     `json:"profile_image,omitempty"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.RegisterInput true "Registration data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	user, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, UserResponse{
		Message: "Registration successful! Please login.",
		User:    user,
	})
}

// Login godoc
// @Summary Login and start a session
// @Description Sets the HttpOnly session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(err)
	}

	user, session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(err)
	}
	h.cookie.set(c, session)

	return c.JSON(http.StatusOK, UserResponse{
		Message: "Welcome back, " + user.Name + "!",
		User:    user,
	})
}

// Logout godoc
// @Summary End the current session
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := h.cookie.token(c)
	h.cookie.clear(c)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "You have been logged out"})
}

// Session godoc
// @Summary Report the current session
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	claims, ok := h.authService.CurrentSession(c.Request().Context(), h.cookie.token(c))
	if !ok {
		return c.JSON(http.StatusOK, SessionResponse{})
	}
	return c.JSON(http.StatusOK, SessionResponse{
		Authenticated: true,
		UserID:        claims.UserID,
		Name:          claims.Name,
		Role:          claims.Role,
		ProfileImage:  claims.ProfileImage,
	})
}
