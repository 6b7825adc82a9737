package handler

import (
	"net/http"

	"github.com/arkv-lms/library-service/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) BorrowBook(c echo.Context) error {
	var req model.BorrowBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID, err := userIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	req.UserID = userID

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rsv, err := h.reservationSvc.BorrowBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

func (h *Handler) ReserveTable(c echo.Context) error {
	var req model.ReserveTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	userID, err := userIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	req.UserID = userID

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rsv, err := h.reservationSvc.ReserveTable(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, rsv)
}

func (h *Handler) GetReservations(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	status := model.Status(c.QueryParam("status"))
	if status == "" {
		status = model.StatusActive
	}
	reservations, err := h.reservationSvc.ListOwn(c.Request().Context(), userID, status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	rsv, err := h.reservationSvc.Cancel(c.Request().Context(), userID, reservationUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) GetAllReservations(c echo.Context) error {
	filter := model.ReservationFilter{
		Type:   model.Kind(c.QueryParam("type")),
		Status: model.Status(c.QueryParam("status")),
	}
	if filter.Status == "" {
		filter.Status = model.StatusActive
	}
	reservations, err := h.reservationSvc.ListAll(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *Handler) ApproveReservation(c echo.Context) error {
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	rsv, err := h.reservationSvc.Approve(c.Request().Context(), reservationUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}

func (h *Handler) RejectReservation(c echo.Context) error {
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}
	rsv, err := h.reservationSvc.Reject(c.Request().Context(), reservationUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsv)
}
