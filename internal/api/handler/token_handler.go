package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthealthcare/clinic-api/internal/api/middleware"
	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// TokenHandler exposes the token validation endpoint.
type TokenHandler struct{}

func NewTokenHandler() *TokenHandler {
	return &TokenHandler{}
}

type tokenUser struct {
	UserID int         `json:"userId"`
	Role   domain.Role `json:"role"`
}

type validateResponse struct {
	Message string    `json:"message"`
	User    tokenUser `json:"user"`
}

// Validate echoes the identity attached by the Auth middleware. Reaching
// this handler at all proves the token verified.
//
// @Summary      Validate the presented token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  validateResponse
// @Failure      401  {object}  errorResponse
// @Router       /token/validate [get]
func (h *TokenHandler) Validate(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(int)
	role, _ := c.Get(middleware.ContextRole).(domain.Role)

	return c.JSON(http.StatusOK, validateResponse{
		Message: "Token is valid",
		User:    tokenUser{UserID: userID, Role: role},
	})
}
