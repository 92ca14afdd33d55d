package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessageAndUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(Database, "query failed", base)
	require.Equal(t, "query failed: boom", err.Error())
	require.ErrorIs(t, err, base)

	plain := New(NotFound, "User not found")
	require.Equal(t, "User not found", plain.Error())
	require.Nil(t, plain.Unwrap())
}

func TestStatusCodes(t *testing.T) {
	cases := map[Kind]int{
		Validation:   http.StatusBadRequest,
		Unauthorized: http.StatusUnauthorized,
		Forbidden:    http.StatusForbidden,
		NotFound:     http.StatusNotFound,
		UserExists:   http.StatusUnprocessableEntity,
		Database:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		require.Equal(t, want, New(kind, "m").StatusCode())
		require.Equal(t, kind, FromStatus(want), "round trip for %d", want)
	}
	// Unknown renders as 500 but 500 maps back to Database
	require.Equal(t, http.StatusInternalServerError, New(Unknown, "m").StatusCode())
	require.Equal(t, Unknown, FromStatus(http.StatusTeapot))
}

func TestKindHelpers(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(NotFound, "gone"))
	require.True(t, IsNotFound(wrapped))
	require.False(t, IsUserExists(wrapped))
	require.Equal(t, NotFound, KindOf(wrapped))

	require.True(t, IsUserExists(New(UserExists, "dup")))
	require.Equal(t, Unknown, KindOf(errors.New("plain")))
	require.Equal(t, Unknown, KindOf(nil))
}
