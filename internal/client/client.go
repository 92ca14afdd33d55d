// Package client is the session-holder counterpart of the API: it retains
// the authenticated identity in memory for the lifetime of the Client value
// and re-attaches the held id and admin flag to every gated request, since
// the server resolves the caller from the request body on each call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"user-admin/internal/apperror"
	"user-admin/internal/model"
)

// ErrNoSession is returned by gated methods when no identity is held;
// callers are expected to log in first.
var ErrNoSession = errors.New("no identity held: login required")

// Identity is the non-secret subset of a user record held client-side.
type Identity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// DeletedUser is the payload returned by a successful delete.
type DeletedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the identity service. It is not safe for concurrent use;
// one Client models one browser tab.
type Client struct {
	baseURL  string
	http     *http.Client
	identity *Identity
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Identity returns the held identity, or nil when logged out.
func (c *Client) Identity() *Identity {
	return c.identity
}

// Logout clears the held identity.
func (c *Client) Logout() {
	c.identity = nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return apperror.New(apperror.FromStatus(resp.StatusCode), env.Message)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// Register creates a new account. The identity is not retained; the flow
// mirrors the browser client, which asks the user to log in afterwards.
func (c *Client) Register(ctx context.Context, email, password string, admin bool) (*Identity, error) {
	var ident Identity
	err := c.do(ctx, http.MethodPost, "/register", map[string]any{
		"email":    email,
		"password": password,
		"Admin":    admin,
	}, &ident)
	if err != nil {
		return nil, err
	}
	return &ident, nil
}

// Login authenticates and retains the returned identity.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, error) {
	var ident Identity
	err := c.do(ctx, http.MethodPost, "/login", map[string]any{
		"email":    email,
		"password": password,
	}, &ident)
	if err != nil {
		return nil, err
	}
	c.identity = &ident
	return &ident, nil
}

// ListUsers fetches all records. No session is required.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, int, error) {
	var data struct {
		Users []model.User `json:"users"`
		Count int          `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/user", nil, &data); err != nil {
		return nil, 0, err
	}
	return data.Users, data.Count, nil
}

// UpdateUser sends an admin-gated partial update, attaching the held
// identity to the payload.
func (c *Client) UpdateUser(ctx context.Context, id, email, password string) (*model.User, error) {
	if c.identity == nil {
		return nil, ErrNoSession
	}
	var user model.User
	err := c.do(ctx, http.MethodPut, "/update/"+id, map[string]any{
		"email":    email,
		"password": password,
		"userId":   c.identity.ID,
		"isAdmin":  c.identity.IsAdmin,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser sends an admin-gated delete, attaching the held identity.
func (c *Client) DeleteUser(ctx context.Context, id string) (*DeletedUser, error) {
	if c.identity == nil {
		return nil, ErrNoSession
	}
	var deleted DeletedUser
	err := c.do(ctx, http.MethodDelete, "/delete/"+id, map[string]any{
		"userId":  c.identity.ID,
		"isAdmin": c.identity.IsAdmin,
	}, &deleted)
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
