// File: internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole persisted entity. PasswordHash is excluded from JSON
// so it can never appear in a response payload.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsAdmin      bool      `db:"is_admin" json:"isAdmin"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
