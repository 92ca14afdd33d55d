package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-admin/internal/apperror"
	"user-admin/internal/cache"
	"user-admin/internal/database"
	"user-admin/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, worker.NewPool(1))

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /ping",
		http.MethodGet + " /user",
		http.MethodPost + " /register",
		http.MethodPost + " /login",
		http.MethodPut + " /update/:id",
		http.MethodDelete + " /delete/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestHTTPErrorHandler(t *testing.T) {
	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("app error maps kind to status", func(t *testing.T) {
		ctx, rec := newCtx()
		HTTPErrorHandler(apperror.New(apperror.UserExists, "User with this email already exists"), ctx)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Contains(t, rec.Body.String(), `"success":false`)
		require.Contains(t, rec.Body.String(), "User with this email already exists")
	})

	t.Run("internal detail stays out of the envelope", func(t *testing.T) {
		ctx, rec := newCtx()
		HTTPErrorHandler(apperror.Wrap(apperror.Database, "Database operation failed", errors.New("dial tcp: refused")), ctx)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Database operation failed")
		require.NotContains(t, rec.Body.String(), "dial tcp")
	})

	t.Run("unknown route", func(t *testing.T) {
		ctx, rec := newCtx()
		HTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), ctx)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Route not found")
	})

	t.Run("untyped error", func(t *testing.T) {
		ctx, rec := newCtx()
		HTTPErrorHandler(errors.New("boom"), ctx)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Internal Server Error")
		require.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("committed response untouched", func(t *testing.T) {
		ctx, rec := newCtx()
		require.NoError(t, ctx.String(http.StatusOK, "done"))
		HTTPErrorHandler(errors.New("late"), ctx)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "done", rec.Body.String())
	})
}
