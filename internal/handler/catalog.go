package handler

import (
	"net/http"

	"github.com/arkv-lms/library-service/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) GetBooks(c echo.Context) error {
	filter := model.BookFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}
	books, err := h.catalogSvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) SetBookStatus(c echo.Context) error {
	bookUid := c.Param("bookUid")
	if bookUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookUid is empty")
	}
	var req model.BookStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.SetBookStatus(c.Request().Context(), bookUid, *req.Available); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetTables(c echo.Context) error {
	tables, err := h.catalogSvc.ListTables(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tables)
}

func (h *Handler) CreateTable(c echo.Context) error {
	var req model.CreateTableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	table, err := h.catalogSvc.CreateTable(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, table)
}

func (h *Handler) SetTableStatus(c echo.Context) error {
	tableUid := c.Param("tableUid")
	if tableUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tableUid is empty")
	}
	var req model.TableStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.SetTableStatus(c.Request().Context(), tableUid, *req.Booked); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
