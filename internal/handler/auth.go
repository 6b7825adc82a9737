package handler

import (
	"net/http"

	"github.com/arkv-lms/library-service/internal/model"
	"github.com/arkv-lms/library-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func userIDFromContext(c echo.Context) (string, error) {
	return auth.GetUserID(c.Request().Context())
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authSvc.Register(c.Request().Context(), req); err != nil {
		return httpError(err)
	}
	return c.String(http.StatusCreated, "ok")
}

func (h *Handler) Authorize(c echo.Context) error {
	var credentials model.AuthRequest
	if err := c.Bind(&credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&credentials); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := h.authSvc.Authorize(c.Request().Context(), credentials)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
