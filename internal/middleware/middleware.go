package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"user-admin/internal/api"
	"user-admin/internal/apperror"
	"user-admin/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextCallerKey = "caller"

// extractCaller reads the caller identity from the request body and puts
// the body back so the handler can still bind it. The identity is supplied
// by the client on every gated request; there is no server-side session to
// resolve it against, so a forged flag cannot be detected here (the correct
// replacement is a server-issued signed session token).
func extractCaller(c echo.Context) (service.Caller, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return service.Caller{}, apperror.Wrap(apperror.Validation, "invalid request body", err)
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	var ident api.CallerIdentity
	if len(body) > 0 {
		if err := json.Unmarshal(body, &ident); err != nil {
			return service.Caller{}, apperror.Wrap(apperror.Validation, "invalid request body", err)
		}
	}
	return service.Caller{ID: ident.UserID, IsAdmin: ident.IsAdmin}, nil
}

// RequireAdmin rejects requests whose body does not carry an authenticated
// admin caller: 401 without a userId, 403 without the admin flag.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, err := extractCaller(c)
		if err != nil {
			return err
		}
		if caller.ID == "" {
			return apperror.New(apperror.Unauthorized, "User not authenticated")
		}
		if !caller.IsAdmin {
			return apperror.New(apperror.Forbidden, "Admin access required")
		}
		c.Set(ContextCallerKey, caller)
		return next(c)
	}
}

// CallerFromContext returns the caller stored by RequireAdmin, or the zero
// Caller when the route is not gated.
func CallerFromContext(c echo.Context) service.Caller {
	caller, _ := c.Get(ContextCallerKey).(service.Caller)
	return caller
}
