package repository

import (
	"context"
	"database/sql"

	"github.com/arkv-lms/library-service/internal/errs"
	"github.com/arkv-lms/library-service/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (r *repository) CreateUser(ctx context.Context, name, email, passwordHash, role string) (model.User, error) {
	var user model.User
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(usersTableName).
			Columns("name", "email", "password_hash").
			Values(name, email, passwordHash).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &user, q, args...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return errs.ErrConflict
			}
			r.log.Error("CreateUser", zap.String("q", q))
			return err
		}

		q, args, err = qb.Insert(userRolesTableName).
			Columns("user_id", "role").
			Values(user.ID, role).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, q, args...)
		return err
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q, args, err := qb.Select("id", "name", "email", "password_hash", "created_at").
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) GetUserRole(ctx context.Context, userID string) (string, error) {
	q := `
	select role from user_roles
	where user_id = $1 and role = 'admin'
`
	var role string
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "member", nil
		}
		return "", err
	}
	return role, nil
}
