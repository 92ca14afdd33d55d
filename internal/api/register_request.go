package api

// RegisterRequest carries the registration payload. The Admin field name
// matches the historical wire format of the browser client.
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`
	Admin    bool   `json:"Admin" example:"false"`
}
