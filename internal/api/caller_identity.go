package api

// CallerIdentity is the caller-supplied identity attached to every gated
// request body. The server enforces its presence and the admin flag but
// cannot verify the fields were not forged client-side; see README.
// swagger:model api.CallerIdentity
type CallerIdentity struct {
	UserID  string `json:"userId" example:"6f1c55d2-6a2e-4e51-b3b8-0f6ad0ef6f3a"`
	IsAdmin bool   `json:"isAdmin" example:"true"`
}
