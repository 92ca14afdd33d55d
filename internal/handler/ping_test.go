package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-admin/internal/apperror"
	"user-admin/internal/cache"
	"user-admin/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newPingCtx() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPingHandler(t *testing.T) {
	healthyCache := &cache.FakeCache{
		GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			cmd := redis.NewStringCmd(ctx)
			cmd.SetErr(redis.Nil)
			return cmd
		},
	}

	t.Run("healthy", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		ctx, rec := newPingCtx()
		require.NoError(t, PingHandler(db, healthyCache)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})

	t.Run("database down", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("conn refused") }}
		ctx, _ := newPingCtx()
		err := PingHandler(db, healthyCache)(ctx)
		require.Equal(t, apperror.Database, apperror.KindOf(err))
	})

	t.Run("cache down", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		rdb := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				cmd := redis.NewStringCmd(ctx)
				cmd.SetErr(errors.New("conn refused"))
				return cmd
			},
		}
		ctx, _ := newPingCtx()
		err := PingHandler(db, rdb)(ctx)
		require.Equal(t, apperror.Database, apperror.KindOf(err))
	})
}
