package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management-api/internal/api/middleware"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// AuthHandler handles administrator registration, login, and profile lookup.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new administrator account.
//
// @Summary      Register a new administrator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Admin registered successfully", echo.Map{
		"admin": toAdminResponse(admin),
	})
}

// Login authenticates an administrator and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.normalize()
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Login successful", echo.Map{
		"token": token,
		"admin": toAdminResponse(admin),
	})
}

// Profile returns the authenticated administrator's own record.
//
// @Summary      Get the current administrator profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	admin, err := h.authService.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Profile retrieved successfully", echo.Map{
		"admin": toAdminResponse(admin),
	})
}
