package handler

import (
	"net/http"

	"github.com/arkv-lms/library-service/internal/errs"
	md "github.com/arkv-lms/library-service/pkg/middleware"
	"github.com/arkv-lms/library-service/pkg/validate"
	_ "github.com/arkv-lms/library-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc        AuthService
	catalogSvc     CatalogService
	reservationSvc ReservationService
	hub            *Hub
	log            *zap.Logger
}

func New(authSvc AuthService, catalogSvc CatalogService, reservationSvc ReservationService, hub *Hub, log *zap.Logger) *Handler {
	h := &Handler{
		authSvc:        authSvc,
		catalogSvc:     catalogSvc,
		reservationSvc: reservationSvc,
		hub:            hub,
		log:            log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/register", h.Register)
	api.POST("/authorize", h.Authorize)

	authed := api.Group("", md.JwtAuthentication)
	authed.GET("/books", h.GetBooks)
	authed.GET("/tables", h.GetTables)
	authed.POST("/reservations/books", h.BorrowBook)
	authed.POST("/reservations/tables", h.ReserveTable)
	authed.GET("/reservations", h.GetReservations)
	authed.POST("/reservations/:reservationUid/cancel", h.CancelReservation)

	admin := authed.Group("", h.AdminOnly)
	admin.POST("/books", h.CreateBook)
	admin.PATCH("/books/:bookUid/status", h.SetBookStatus)
	admin.POST("/tables", h.CreateTable)
	admin.PATCH("/tables/:tableUid/status", h.SetTableStatus)
	admin.GET("/admin/reservations", h.GetAllReservations)
	admin.POST("/admin/reservations/:reservationUid/approve", h.ApproveReservation)
	admin.POST("/admin/reservations/:reservationUid/reject", h.RejectReservation)

	e.GET("/ws/changes/:table", h.ChangeFeed)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// AdminOnly re-checks the role against the role table; the jwt role claim
// alone does not grant admin access.
func (h *Handler) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		userID, err := userIDFromContext(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		if !h.authSvc.IsAdmin(ctx, userID) {
			return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
		}
		return next(c)
	}
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrItemUnavailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
