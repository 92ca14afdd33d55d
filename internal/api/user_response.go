// File: internal/api/user_response.go
package api

import (
	"user-admin/internal/model"
)

// IdentityResponse is the non-secret subset of a user record returned by
// register and login.
// swagger:model api.IdentityResponse
type IdentityResponse struct {
	ID      string `json:"id" example:"6f1c55d2-6a2e-4e51-b3b8-0f6ad0ef6f3a"`
	Email   string `json:"email" example:"alice@example.com"`
	IsAdmin bool   `json:"isAdmin" example:"false"`
}

// NewIdentityResponse projects a user record onto its identity.
func NewIdentityResponse(u *model.User) IdentityResponse {
	return IdentityResponse{
		ID:      u.ID.String(),
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}

// UserListResponse is the data payload of the listing endpoint.
// swagger:model api.UserListResponse
type UserListResponse struct {
	Users []model.User `json:"users"`
	Count int          `json:"count" example:"2"`
}

// DeletedUserResponse is the data payload of a successful delete.
// swagger:model api.DeletedUserResponse
type DeletedUserResponse struct {
	ID    string `json:"id" example:"6f1c55d2-6a2e-4e51-b3b8-0f6ad0ef6f3a"`
	Email string `json:"email" example:"alice@example.com"`
}
