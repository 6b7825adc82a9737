package handler

import (
	"context"

	"github.com/arkv-lms/library-service/internal/model"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Authorize(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
	IsAdmin(ctx context.Context, userID string) bool
}

type CatalogService interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	SetBookStatus(ctx context.Context, bookID string, available bool) error
	ListTables(ctx context.Context) ([]model.Table, error)
	CreateTable(ctx context.Context, req model.CreateTableRequest) (model.Table, error)
	SetTableStatus(ctx context.Context, tableID string, booked bool) error
}

type ReservationService interface {
	BorrowBook(ctx context.Context, req model.BorrowBookRequest) (model.Reservation, error)
	ReserveTable(ctx context.Context, req model.ReserveTableRequest) (model.Reservation, error)
	ListOwn(ctx context.Context, userID string, status model.Status) ([]model.Reservation, error)
	ListAll(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationDetails, error)
	Approve(ctx context.Context, reservationID string) (model.Reservation, error)
	Reject(ctx context.Context, reservationID string) (model.Reservation, error)
	Cancel(ctx context.Context, userID, reservationID string) (model.Reservation, error)
}
