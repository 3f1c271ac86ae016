package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Pranav210905/fin/internal/repositories"
	"github.com/Pranav210905/fin/internal/session"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{store.ErrUnauthenticated, http.StatusUnauthorized},
		{store.ErrPostNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", repositories.ErrProfileNotFound), http.StatusNotFound},
		{store.ErrEmptyText, http.StatusBadRequest},
		{store.ErrSelfFollow, http.StatusBadRequest},
		{session.ErrInvalidTheme, http.StatusBadRequest},
		{repositories.ErrUsernameTaken, http.StatusConflict},
		{echo.NewHTTPError(http.StatusTeapot), http.StatusTeapot},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		var he *echo.HTTPError
		require.ErrorAs(t, httpError(tt.err), &he)
		assert.Equal(t, tt.code, he.Code, tt.err.Error())
	}
}
