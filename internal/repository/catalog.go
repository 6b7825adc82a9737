package repository

import (
	"context"
	"time"

	"github.com/arkv-lms/library-service/internal/model"
	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "category", "available", "borrowed_by", "expected_return_date").
		From(booksTableName).
		OrderBy("title asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "category", "available").
		Values(req.Title, req.Author, req.Category, true).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) UpdateBookStatus(ctx context.Context, bookID string, available bool, borrowedBy *string, expectedReturn *time.Time) error {
	q, args, err := qb.Update(booksTableName).
		Set("available", available).
		Set("borrowed_by", borrowedBy).
		Set("expected_return_date", expectedReturn).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *repository) ListTables(ctx context.Context) ([]model.Table, error) {
	q, args, err := qb.Select("id", "table_number", "seats", "booked", "booked_by").
		From(libraryTablesTableName).
		OrderBy("table_number asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var tables []model.Table
	if err := r.db.SelectContext(ctx, &tables, q, args...); err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *repository) CreateTable(ctx context.Context, req model.CreateTableRequest) (model.Table, error) {
	q, args, err := qb.Insert(libraryTablesTableName).
		Columns("table_number", "seats", "booked").
		Values(req.TableNumber, req.Seats, false).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Table{}, err
	}
	var table model.Table
	if err := r.db.GetContext(ctx, &table, q, args...); err != nil {
		r.log.Error("CreateTable", zap.String("q", q), zap.Any("args", args))
		return model.Table{}, err
	}
	return table, nil
}

func (r *repository) UpdateTableStatus(ctx context.Context, tableID string, booked bool, bookedBy *string) error {
	q, args, err := qb.Update(libraryTablesTableName).
		Set("booked", booked).
		Set("booked_by", bookedBy).
		Where(sq.Eq{"id": tableID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
