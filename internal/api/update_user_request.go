// File: internal/api/update_user_request.go
package api

// UpdateUserRequest carries the optional new email/password plus the
// caller identity fields the server gates on.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password string `json:"password" validate:"omitempty,min=6" example:"Secret456!"`
	UserID   string `json:"userId" example:"6f1c55d2-6a2e-4e51-b3b8-0f6ad0ef6f3a"`
	IsAdmin  bool   `json:"isAdmin" example:"true"`
}
