package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"user-admin/internal/apperror"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPut, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractCaller(t *testing.T) {
	// empty body yields the zero caller
	ctx, _ := newContext("")
	caller, err := extractCaller(ctx)
	require.NoError(t, err)
	require.Empty(t, caller.ID)

	// malformed JSON
	ctx, _ = newContext("{not json")
	_, err = extractCaller(ctx)
	require.Equal(t, apperror.Validation, apperror.KindOf(err))

	// identity fields picked up
	ctx, _ = newContext(`{"userId":"u-1","isAdmin":true,"email":"x@y.com"}`)
	caller, err = extractCaller(ctx)
	require.NoError(t, err)
	require.Equal(t, "u-1", caller.ID)
	require.True(t, caller.IsAdmin)

	// body must still be readable by the handler after extraction
	rest, err := io.ReadAll(ctx.Request().Body)
	require.NoError(t, err)
	require.Contains(t, string(rest), `"email":"x@y.com"`)
}

func TestRequireAdmin(t *testing.T) {
	// admin passes through and is stored on the context
	ctx, rec := newContext(`{"userId":"u-1","isAdmin":true}`)
	called := false
	err := RequireAdmin(func(c echo.Context) error {
		called = true
		require.Equal(t, "u-1", CallerFromContext(c).ID)
		return c.String(http.StatusOK, "ok")
	})(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// no userId
	ctx, _ = newContext(`{"isAdmin":true}`)
	called = false
	err = RequireAdmin(func(echo.Context) error { called = true; return nil })(ctx)
	require.Equal(t, apperror.Unauthorized, apperror.KindOf(err))
	require.False(t, called)

	// authenticated but not admin
	ctx, _ = newContext(`{"userId":"u-2","isAdmin":false}`)
	called = false
	err = RequireAdmin(func(echo.Context) error { called = true; return nil })(ctx)
	require.Equal(t, apperror.Forbidden, apperror.KindOf(err))
	require.False(t, called)
}

func TestCallerFromContextUngated(t *testing.T) {
	ctx, _ := newContext("")
	require.Empty(t, CallerFromContext(ctx).ID)
}
