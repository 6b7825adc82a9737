package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arkv-lms/library-service/internal/errs"
	"github.com/arkv-lms/library-service/internal/handler"
	"github.com/arkv-lms/library-service/internal/model"
	"github.com/arkv-lms/library-service/pkg/auth"
	"github.com/arkv-lms/library-service/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/arkv-lms/library-service/internal/handler/mocks"
)

// withUser stands in for the jwt middleware in tests.
func withUser(userID, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), userID, role)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func newTestHandler(authSvc handler.AuthService, catalogSvc handler.CatalogService, reservationSvc handler.ReservationService) *handler.Handler {
	log := zap.NewExample().Named("test")
	return handler.New(authSvc, catalogSvc, reservationSvc, handler.NewHub(), log)
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		search   string
		category string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCatalogService, inp input) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookFilter{Search: inp.search, Category: inp.category}).
					Return([]model.Book{
						{
							ID:        "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
							Title:     "Dune",
							Author:    "Frank Herbert",
							Category:  "fiction",
							Available: true,
						},
					}, nil)
			},
			input: input{
				search:   "du",
				category: "fiction",
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","title":"Dune","author":"Frank Herbert","category":"fiction","available":true}]`,
			},
			wantErr: false,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockCatalogService, inp input) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookFilter{Search: inp.search, Category: inp.category}).
					Return(nil, errors.New("db internal"))
			},
			input: input{},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			catalogSvc := service_mocks.NewMockCatalogService(c)
			h := newTestHandler(service_mocks.NewMockAuthService(c), catalogSvc, service_mocks.NewMockReservationService(c))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books", h.GetBooks)

			r := httptest.NewRequest(http.MethodGet, "/books?search="+tt.input.search+"&category="+tt.input.category, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(catalogSvc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_BorrowBook(t *testing.T) {
	t.Parallel()
	const userID = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockReservationService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().
					BorrowBook(gomock.Any(), model.BorrowBookRequest{
						BookID: "b1",
						Details: model.StudentDetailsRequest{
							StudentName:        "Asha Rao",
							RegistrationNumber: "R-1042",
							Class:              "10",
							Section:            "B",
							Year:               "2026",
						},
						UserID: userID,
					}).
					Return(model.Reservation{
						ID:        "r1",
						UserID:    userID,
						Type:      model.KindBook,
						ItemID:    "b1",
						ItemTitle: "Dune",
						Status:    model.StatusPending,
						CreatedAt: createdAt,
					}, nil)
			},
			body: `{"bookId":"b1","details":{"studentName":"Asha Rao","registrationNumber":"R-1042","class":"10","section":"B","year":"2026"}}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"r1","userId":"83575e12-7ce0-48ee-9931-51919ff3c9ee","type":"book","itemId":"b1","itemTitle":"Dune","status":"pending","createdAt":"2026-01-15T10:00:00Z"}`,
			},
			wantErr: false,
		},
		{
			name:         "err. details required",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			body:         `{"bookId":"b1","details":{}}`,
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. book taken",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().
					BorrowBook(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrItemUnavailable)
			},
			body: `{"bookId":"b1","details":{"studentName":"Asha Rao","registrationNumber":"R-1042","class":"10","section":"B","year":"2026"}}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"item is not available"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			reservationSvc := service_mocks.NewMockReservationService(c)
			h := newTestHandler(service_mocks.NewMockAuthService(c), service_mocks.NewMockCatalogService(c), reservationSvc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/reservations/books", h.BorrowBook, withUser(userID, auth.RoleMember))

			r := httptest.NewRequest(http.MethodPost, "/reservations/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(reservationSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CreateBook_adminGate(t *testing.T) {
	t.Parallel()
	const userID = "83575e12-7ce0-48ee-9931-51919ff3c9ee"

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(a *service_mocks.MockAuthService, cs *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok. admin",
			mockBehavior: func(a *service_mocks.MockAuthService, cs *service_mocks.MockCatalogService) {
				a.EXPECT().IsAdmin(gomock.Any(), userID).Return(true)
				cs.EXPECT().
					CreateBook(gomock.Any(), model.CreateBookRequest{Title: "Dune", Author: "Frank Herbert", Category: "fiction"}).
					Return(model.Book{ID: "b1", Title: "Dune", Author: "Frank Herbert", Category: "fiction", Available: true}, nil)
			},
			body: `{"title":"Dune","author":"Frank Herbert","category":"fiction"}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"b1","title":"Dune","author":"Frank Herbert","category":"fiction","available":true}`,
			},
		},
		{
			name: "err. member is rejected before the service is called",
			mockBehavior: func(a *service_mocks.MockAuthService, cs *service_mocks.MockCatalogService) {
				a.EXPECT().IsAdmin(gomock.Any(), userID).Return(false)
			},
			body: `{"title":"Dune","author":"Frank Herbert","category":"fiction"}`,
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"admin only"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			authSvc := service_mocks.NewMockAuthService(c)
			catalogSvc := service_mocks.NewMockCatalogService(c)
			h := newTestHandler(authSvc, catalogSvc, service_mocks.NewMockReservationService(c))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/books", h.CreateBook, withUser(userID, auth.RoleMember), h.AdminOnly)

			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(authSvc, catalogSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	const userID = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockReservationService)

	var tests = []struct {
		name           string
		mockBehavior   mockBehavior
		reservationUid string
		response       response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().
					Cancel(gomock.Any(), userID, "r1").
					Return(model.Reservation{
						ID:        "r1",
						UserID:    userID,
						Type:      model.KindTable,
						ItemID:    "t1",
						ItemTitle: "Table 3",
						Status:    model.StatusCancelled,
						CreatedAt: createdAt,
					}, nil)
			},
			reservationUid: "r1",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"r1","userId":"83575e12-7ce0-48ee-9931-51919ff3c9ee","type":"table","itemId":"t1","itemTitle":"Table 3","status":"cancelled","createdAt":"2026-01-15T10:00:00Z"}`,
			},
		},
		{
			name: "err. not own or not active",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().
					Cancel(gomock.Any(), userID, "r2").
					Return(model.Reservation{}, errs.ErrNotFound)
			},
			reservationUid: "r2",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			reservationSvc := service_mocks.NewMockReservationService(c)
			h := newTestHandler(service_mocks.NewMockAuthService(c), service_mocks.NewMockCatalogService(c), reservationSvc)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/reservations/:reservationUid/cancel", h.CancelReservation, withUser(userID, auth.RoleMember))

			r := httptest.NewRequest(http.MethodPost, "/reservations/"+tt.reservationUid+"/cancel", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(reservationSvc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
