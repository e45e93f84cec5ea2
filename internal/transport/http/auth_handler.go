package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sahyadritrails/trails-api/internal/service"
	"github.com/sahyadritrails/trails-api/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	e.POST("/api/auth/login", handler.login)
	e.POST("/api/auth/google", handler.loginWithGoogle)
	e.POST("/api/auth/logout", handler.logout, RequireAdmin(auth))
}

func (h *AuthHandler) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) loginWithGoogle(c echo.Context) error {
	var req struct {
		IDToken string `json:"id_token"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	result, err := h.auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), currentToken(c)); err != nil {
		c.Logger().Errorf("auth handler: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("logout failed"))
	}
	return c.JSON(http.StatusOK, util.Message("logged out"))
}

func (h *AuthHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrGoogleToken):
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	case errors.Is(err, service.ErrGoogleDisabled):
		return c.JSON(http.StatusForbidden, util.Error(err.Error()))
	default:
		c.Logger().Errorf("auth handler: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("internal server error"))
	}
}
