// File: internal/service/identity.go
package service

import (
	"context"
	"strings"

	"user-admin/internal/apperror"
	"user-admin/internal/database"
	"user-admin/internal/model"
	"user-admin/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MinPasswordLength is enforced on the plaintext, before hashing.
const MinPasswordLength = 6

var validate = validator.New()

var (
	hashPassword       = HashPassword
	comparePassword    = ComparePassword
	createUser         = store.CreateUser
	getUserByID        = store.GetUserByID
	getUserByEmail     = store.GetUserByEmail
	listUsersStore     = store.ListUsers
	updateUserEmail    = store.UpdateUserEmail
	updateUserPassword = store.UpdateUserPassword
	deleteUserStore    = store.DeleteUser
)

// Caller is the client-supplied identity gating a mutating operation.
// The service enforces the admin flag but cannot verify it was not forged;
// this trust-the-client model is a documented weakness of the wire contract.
type Caller struct {
	ID      string
	IsAdmin bool
}

// NormalizeEmail trims whitespace and lowercases, so uniqueness and lookup
// are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func requireAdmin(caller Caller) error {
	if caller.ID == "" {
		return apperror.New(apperror.Unauthorized, "User not authenticated")
	}
	if !caller.IsAdmin {
		return apperror.New(apperror.Forbidden, "Admin access required")
	}
	return nil
}

// RegisterUser validates, hashes and persists a new user record.
func RegisterUser(ctx context.Context, db database.DB, email, password string, isAdmin bool) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperror.New(apperror.Validation, "Email and password are required")
	}
	if len(password) < MinPasswordLength {
		return nil, apperror.New(apperror.Validation, "Password must be at least 6 characters long")
	}
	if !validEmail(email) {
		return nil, apperror.New(apperror.Validation, "Invalid email format")
	}

	if _, err := getUserByEmail(ctx, db, email); err == nil {
		return nil, apperror.New(apperror.UserExists, "User with this email already exists")
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, apperror.Wrap(apperror.Database, "Failed to hash password", err)
	}

	return createUser(ctx, db, &model.User{
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
}

// AuthenticateUser resolves the record by email and checks the password.
// Both failure messages are identical so a caller cannot probe which of
// the two was wrong; only the error kind differs.
func AuthenticateUser(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperror.New(apperror.Validation, "Email and password are required")
	}

	user, err := getUserByEmail(ctx, db, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.New(apperror.NotFound, "Invalid email or password")
		}
		return nil, err
	}

	if err := comparePassword(user.PasswordHash, password); err != nil {
		return nil, apperror.New(apperror.Unauthorized, "Invalid email or password")
	}
	return user, nil
}

// ListUsers returns every record plus the count. Password hashes never
// leave the model's JSON projection.
func ListUsers(ctx context.Context, db database.DB) ([]model.User, int, error) {
	users, err := listUsersStore(ctx, db)
	if err != nil {
		return nil, 0, err
	}
	return users, len(users), nil
}

// UpdateUser applies an admin-gated partial update (email and/or password)
// and returns the updated record.
func UpdateUser(ctx context.Context, db database.DB, caller Caller, rawID, email, password string) (*model.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "Invalid user ID format")
	}

	if email == "" && password == "" {
		return nil, apperror.New(apperror.Validation, "No update data provided")
	}

	// every field is validated and hashed before the first store write, so
	// a rejected field never leaves a partial update behind
	var hash string
	if password != "" {
		if len(password) < MinPasswordLength {
			return nil, apperror.New(apperror.Validation, "Password must be at least 6 characters long")
		}
		hash, err = hashPassword(password)
		if err != nil {
			return nil, apperror.Wrap(apperror.Database, "Failed to hash password", err)
		}
	}

	if email != "" {
		email = NormalizeEmail(email)
		if !validEmail(email) {
			return nil, apperror.New(apperror.Validation, "Invalid email format")
		}
		// reject only when a different record owns the email; updating a
		// record to its own unchanged email succeeds
		if owner, err := getUserByEmail(ctx, db, email); err == nil {
			if owner.ID != id {
				return nil, apperror.New(apperror.UserExists, "Email already in use by another user")
			}
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
	}

	if email != "" {
		if err := updateUserEmail(ctx, db, id, email); err != nil {
			return nil, err
		}
	}
	if hash != "" {
		if err := updateUserPassword(ctx, db, id, hash); err != nil {
			return nil, err
		}
	}

	return getUserByID(ctx, db, id)
}

// DeleteUser removes an existing record, admin-gated.
func DeleteUser(ctx context.Context, db database.DB, caller Caller, rawID string) (*model.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperror.New(apperror.Validation, "Invalid user ID format")
	}

	return deleteUserStore(ctx, db, id)
}
