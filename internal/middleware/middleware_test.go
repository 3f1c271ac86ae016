package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Pranav210905/fin/internal/identity"
	"github.com/Pranav210905/fin/internal/prefs"
	"github.com/Pranav210905/fin/internal/repositories"
	"github.com/Pranav210905/fin/internal/seed"
	"github.com/Pranav210905/fin/internal/session"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier map[string]string

func (v stubVerifier) VerifyIDToken(_ context.Context, token string) (string, error) {
	uid, ok := v[token]
	if !ok {
		return "", errors.New("bad token")
	}
	return uid, nil
}

func setup(t *testing.T) (*echo.Echo, *identity.Tokens, *session.Registry) {
	t.Helper()
	snap := seed.Snapshot()
	reg := session.NewRegistry(session.Deps{
		Store:    store.New(snap),
		Profiles: repositories.NewMemoryProfileRepository(snap.Users...),
		Prefs:    prefs.NewMemory(),
	})
	t.Cleanup(reg.CloseAll)
	return echo.New(), identity.NewTokens("secret", time.Hour), reg
}

func whoami(c echo.Context) error {
	s, ok := SessionFrom(c)
	if !ok {
		return c.String(http.StatusOK, "anonymous")
	}
	return c.String(http.StatusOK, s.UserID())
}

func serve(e *echo.Echo, h echo.HandlerFunc, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	e, tokens, reg := setup(t)
	s, err := reg.Open(context.Background(), "3")
	require.NoError(t, err)
	token, err := tokens.Issue("3", s.ID)
	require.NoError(t, err)

	h := JWTAuthMiddleware(tokens, reg)(whoami)

	rec := serve(e, h, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(e, h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, h, "Token "+token).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, h, "Bearer garbage").Code)

	require.NoError(t, reg.Close(s.ID))
	assert.Equal(t, http.StatusUnauthorized, serve(e, h, "Bearer "+token).Code)
}

func TestOptionalSession(t *testing.T) {
	e, tokens, reg := setup(t)
	s, err := reg.Open(context.Background(), "1")
	require.NoError(t, err)
	token, err := tokens.Issue("1", s.ID)
	require.NoError(t, err)

	h := OptionalSession(tokens, reg)(whoami)

	assert.Equal(t, "1", serve(e, h, "Bearer "+token).Body.String())
	assert.Equal(t, "anonymous", serve(e, h, "").Body.String())
	assert.Equal(t, "anonymous", serve(e, h, "Bearer nope").Body.String())
}

func TestFirebaseAuthMiddleware(t *testing.T) {
	e := echo.New()
	h := FirebaseAuthMiddleware(stubVerifier{"good": "uid-1"})(func(c echo.Context) error {
		return c.String(http.StatusOK, FirebaseUID(c))
	})

	rec := serve(e, h, "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(e, h, "Bearer bad").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, h, "").Code)
}
