package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/arkv-lms/library-service/internal/errs"
	"github.com/arkv-lms/library-service/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// catalog
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBookStatus(ctx context.Context, bookID string, available bool, borrowedBy *string, expectedReturn *time.Time) error
	ListTables(ctx context.Context) ([]model.Table, error)
	CreateTable(ctx context.Context, req model.CreateTableRequest) (model.Table, error)
	UpdateTableStatus(ctx context.Context, tableID string, booked bool, bookedBy *string) error

	// reservations
	CreateBookReservation(ctx context.Context, userID, bookID string, details model.StudentDetailsRequest) (model.Reservation, error)
	CreateTableReservation(ctx context.Context, userID, tableID string) (model.Reservation, error)
	ListReservationsByUser(ctx context.Context, userID string, status model.Status) ([]model.Reservation, error)
	ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.Reservation, error)
	GetStudentDetails(ctx context.Context, reservationID string) (*model.StudentDetails, error)
	ApproveReservation(ctx context.Context, reservationID string) (model.Reservation, error)
	RejectReservation(ctx context.Context, reservationID string) (model.Reservation, error)
	CancelReservation(ctx context.Context, userID, reservationID string) (model.Reservation, error)

	// users
	CreateUser(ctx context.Context, name, email, passwordHash, role string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserRole(ctx context.Context, userID string) (string, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName          = `users`
	userRolesTableName      = `user_roles`
	booksTableName          = `books`
	libraryTablesTableName  = `library_tables`
	reservationTableName    = `reservations`
	studentDetailsTableName = `student_details`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// withTx runs fn inside a transaction so the paired item/reservation writes
// can never be observed half-applied.
func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
