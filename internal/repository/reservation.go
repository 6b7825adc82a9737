package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arkv-lms/library-service/internal/errs"
	"github.com/arkv-lms/library-service/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreateBookReservation is the approval-gated path: the book stays available
// until an admin approves, so only the reservation and student rows are
// written here. Both inserts share one transaction.
func (r *repository) CreateBookReservation(ctx context.Context, userID, bookID string, details model.StudentDetailsRequest) (model.Reservation, error) {
	var rsv model.Reservation
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var (
			title     string
			available bool
		)
		q := fmt.Sprintf(`select title, available from %s where id = $1`, booksTableName)
		if err := tx.QueryRowContext(ctx, q, bookID).Scan(&title, &available); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if !available {
			return errs.ErrItemUnavailable
		}

		q, args, err := qb.Insert(reservationTableName).
			Columns("id", "user_id", "type", "item_id", "item_title", "status").
			Values(uuid.New(), userID, model.KindBook, bookID, title, model.StatusPending).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &rsv, q, args...); err != nil {
			r.log.Error("CreateBookReservation", zap.String("q", q), zap.Any("args", args))
			return err
		}

		q, args, err = qb.Insert(studentDetailsTableName).
			Columns("reservation_id", "user_id", "student_name", "registration_number", "class", "section", "year").
			Values(rsv.ID, userID, details.StudentName, details.RegistrationNumber, details.Class, details.Section, details.Year).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, q, args...)
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

// CreateTableReservation is the immediate-active path: the table flip and the
// reservation insert commit together. The booked=false predicate makes a
// concurrent double-book lose cleanly instead of overwriting.
func (r *repository) CreateTableReservation(ctx context.Context, userID, tableID string) (model.Reservation, error) {
	var rsv model.Reservation
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var tableNumber int
		q := fmt.Sprintf(`update %s
	set booked = true, booked_by = $1
	where id = $2 and booked = false
	returning table_number`, libraryTablesTableName)
		if err := tx.QueryRowContext(ctx, q, userID, tableID).Scan(&tableNumber); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrItemUnavailable
			}
			return err
		}

		q, args, err := qb.Insert(reservationTableName).
			Columns("id", "user_id", "type", "item_id", "item_title", "status").
			Values(uuid.New(), userID, model.KindTable, tableID, fmt.Sprintf("Table %d", tableNumber), model.StatusActive).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &rsv, q, args...); err != nil {
			r.log.Error("CreateTableReservation", zap.String("q", q), zap.Any("args", args))
			return err
		}
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

func (r *repository) ListReservationsByUser(ctx context.Context, userID string, status model.Status) ([]model.Reservation, error) {
	q := qb.Select("id", "user_id", "type", "item_id", "item_title", "status", "created_at").
		From(reservationTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc")
	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.Reservation, error) {
	q := qb.Select("id", "user_id", "type", "item_id", "item_title", "status", "created_at").
		From(reservationTableName).
		OrderBy("created_at desc")
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Type != "" {
		q = q.Where(sq.Eq{"type": filter.Type})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Reservation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetStudentDetails(ctx context.Context, reservationID string) (*model.StudentDetails, error) {
	q, args, err := qb.Select("id", "reservation_id", "user_id", "student_name", "registration_number", "class", "section", "year", "created_at").
		From(studentDetailsTableName).
		Where(sq.Eq{"reservation_id": reservationID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	var details model.StudentDetails
	if err := r.db.GetContext(ctx, &details, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

// ApproveReservation moves pending -> approved and flips the book in the same
// transaction. The status predicate makes re-approving a no-op that reports
// not found rather than touching the book twice.
func (r *repository) ApproveReservation(ctx context.Context, reservationID string) (model.Reservation, error) {
	var rsv model.Reservation
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q := fmt.Sprintf(`update %s
	set status = $1
	where id = $2 and status = $3
	returning id, user_id, type, item_id, item_title, status, created_at`, reservationTableName)
		if err := tx.GetContext(ctx, &rsv, q, model.StatusApproved, reservationID, model.StatusPending); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}

		switch rsv.Type {
		case model.KindBook:
			q = fmt.Sprintf(`update %s set available = false, borrowed_by = $1 where id = $2`, booksTableName)
		case model.KindTable:
			q = fmt.Sprintf(`update %s set booked = true, booked_by = $1 where id = $2`, libraryTablesTableName)
		}
		res, err := tx.ExecContext(ctx, q, rsv.UserID, rsv.ItemID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}

// RejectReservation moves pending -> rejected; the item was never flipped, so
// it stays untouched.
func (r *repository) RejectReservation(ctx context.Context, reservationID string) (model.Reservation, error) {
	q := fmt.Sprintf(`update %s
	set status = $1
	where id = $2 and status = $3
	returning id, user_id, type, item_id, item_title, status, created_at`, reservationTableName)

	var rsv model.Reservation
	if err := r.db.GetContext(ctx, &rsv, q, model.StatusRejected, reservationID, model.StatusPending); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrNotFound
		}
		return model.Reservation{}, err
	}
	return rsv, nil
}

// CancelReservation moves active -> cancelled and frees the item in the same
// transaction. Ownership is enforced in the predicate, not in the handler.
func (r *repository) CancelReservation(ctx context.Context, userID, reservationID string) (model.Reservation, error) {
	var rsv model.Reservation
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q := fmt.Sprintf(`update %s
	set status = $1
	where id = $2 and user_id = $3 and status = $4
	returning id, user_id, type, item_id, item_title, status, created_at`, reservationTableName)
		if err := tx.GetContext(ctx, &rsv, q, model.StatusCancelled, reservationID, userID, model.StatusActive); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}

		switch rsv.Type {
		case model.KindBook:
			q = fmt.Sprintf(`update %s set available = true, borrowed_by = null, expected_return_date = null where id = $1`, booksTableName)
		case model.KindTable:
			q = fmt.Sprintf(`update %s set booked = false, booked_by = null where id = $1`, libraryTablesTableName)
		}
		res, err := tx.ExecContext(ctx, q, rsv.ItemID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return rsv, nil
}
