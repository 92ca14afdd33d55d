// File: internal/cache/users.go
package cache

import (
	"context"
	"encoding/json"
	"time"

	"user-admin/internal/model"
)

const (
	userListKey = "users:list"
	userListTTL = 30 * time.Second
)

// GetUserList returns the cached listing, or ok=false on miss or any
// redis/decode error. Callers fall back to the store.
func GetUserList(ctx context.Context, c Cache) ([]model.User, bool) {
	raw, err := c.Get(ctx, userListKey).Result()
	if err != nil {
		return nil, false
	}
	var users []model.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, false
	}
	return users, true
}

// SetUserList caches the listing for userListTTL. Errors are ignored; the
// cache is an optimization, never the source of truth.
func SetUserList(ctx context.Context, c Cache, users []model.User) {
	raw, err := json.Marshal(users)
	if err != nil {
		return
	}
	c.Set(ctx, userListKey, raw, userListTTL)
}

// InvalidateUserList drops the cached listing after a mutation.
func InvalidateUserList(ctx context.Context, c Cache) {
	c.Del(ctx, userListKey)
}
