package store

import (
	"context"
	"errors"

	"user-admin/internal/apperror"
	"user-admin/internal/database"
	"user-admin/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE raised when the lower(email) index rejects
// a duplicate. The store is the sole arbiter of email uniqueness.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func GetUserByID(ctx context.Context, db database.DB, userID uuid.UUID) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, is_admin, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.Wrap(apperror.NotFound, "User not found", err)
		}
		return nil, apperror.Wrap(apperror.Database, "GetUserByID", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, email, password_hash, is_admin, created_at, updated_at
		 FROM users WHERE lower(email) = lower($1)`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.Wrap(apperror.NotFound, "User not found", err)
		}
		return nil, apperror.Wrap(apperror.Database, "GetUserByEmail", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, email, password_hash, is_admin, created_at, updated_at
		 FROM users ORDER BY created_at`,
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.Database, "ListUsers", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.IsAdmin,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, apperror.Wrap(apperror.Database, "ListUsers", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Wrap(apperror.Database, "ListUsers", err)
	}
	return users, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, is_admin)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Wrap(apperror.UserExists, "User with this email already exists", err)
		}
		return nil, apperror.Wrap(apperror.Database, "CreateUser", err)
	}
	return u, nil
}

func UpdateUserEmail(ctx context.Context, db database.DB, userID uuid.UUID, email string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET email = $1, updated_at = now()
		 WHERE id = $2`,
		email,
		userID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Wrap(apperror.UserExists, "Email already in use by another user", err)
		}
		return apperror.Wrap(apperror.Database, "UpdateUserEmail", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.NotFound, "User not found")
	}
	return nil
}

func UpdateUserPassword(ctx context.Context, db database.DB, userID uuid.UUID, passwordHash string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now()
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return apperror.Wrap(apperror.Database, "UpdateUserPassword", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.New(apperror.NotFound, "User not found")
	}
	return nil
}

func DeleteUser(ctx context.Context, db database.DB, userID uuid.UUID) (*model.User, error) {
	row := db.QueryRow(ctx,
		`DELETE FROM users WHERE id = $1
		 RETURNING id, email`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.Wrap(apperror.NotFound, "User not found", err)
		}
		return nil, apperror.Wrap(apperror.Database, "DeleteUser", err)
	}
	return u, nil
}
