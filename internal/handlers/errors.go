package handlers

import (
	"errors"
	"net/http"

	"github.com/Pranav210905/fin/internal/identity"
	"github.com/Pranav210905/fin/internal/middleware"
	"github.com/Pranav210905/fin/internal/repositories"
	"github.com/Pranav210905/fin/internal/session"
	"github.com/Pranav210905/fin/internal/store"
	"github.com/labstack/echo/v4"
)

// httpError translates domain errors into echo HTTP errors.
func httpError(err error) error {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, store.ErrUnauthenticated),
		errors.Is(err, identity.ErrInvalidIDToken):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, store.ErrPostNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, repositories.ErrProfileNotFound),
		errors.Is(err, session.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrEmptyText),
		errors.Is(err, store.ErrInvalidPostType),
		errors.Is(err, store.ErrSelfFollow),
		errors.Is(err, session.ErrInvalidTheme):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error").SetInternal(err)
	}
}

// currentSession returns the request's session or a 401.
func currentSession(c echo.Context) (*session.Session, error) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}
	return s, nil
}

// viewer returns the session user, or nil for anonymous requests.
func viewer(c echo.Context) *session.Session {
	s, _ := middleware.SessionFrom(c)
	return s
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}
