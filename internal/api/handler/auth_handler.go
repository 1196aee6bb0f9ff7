package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthealthcare/clinic-api/internal/api/metrics"
	"github.com/smarthealthcare/clinic-api/internal/api/middleware"
	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

type AuthHandler struct {
	authService       ports.AuthService
	tokens            ports.TokenService
	revocationEnabled bool
}

func NewAuthHandler(authService ports.AuthService, tokens ports.TokenService, revocationEnabled bool) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		tokens:            tokens,
		revocationEnabled: revocationEnabled,
	}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"role"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register creates a new user account. No token is issued at registration.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "User registered successfully!"})
}

// Login authenticates a user and returns a session token. Unknown email and
// wrong password produce the same response body.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.Inc()
	return c.JSON(http.StatusOK, loginResponse{Message: "Login successful", Token: token})
}

// Logout revokes the presented token when revocation is enabled. With
// revocation disabled the token stays valid until expiry, which the
// response says outright rather than pretending otherwise.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if !h.revocationEnabled {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "logout acknowledged; token revocation is disabled, token remains valid until expiry",
		})
	}

	token, _ := c.Get(middleware.ContextToken).(string)
	if err := h.tokens.Revoke(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}
