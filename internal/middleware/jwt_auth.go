package middleware

import (
	"net/http"
	"strings"

	"github.com/Pranav210905/fin/internal/identity"
	"github.com/Pranav210905/fin/internal/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionKey = "session"
	claimsKey  = "user"
)

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}
	return parts[1], nil
}

func resolve(c echo.Context, tokens *identity.Tokens, sessions *session.Registry) error {
	tokenString, err := bearerToken(c)
	if err != nil {
		return err
	}
	claims, err := tokens.Parse(tokenString)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	s, ok := sessions.Get(claims.SessionID)
	if !ok || s.UserID() != claims.UserID {
		return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
	}
	c.Set(claimsKey, claims)
	c.Set(sessionKey, s)
	return nil
}

// JWTAuthMiddleware requires a valid local JWT naming a live session.
func JWTAuthMiddleware(tokens *identity.Tokens, sessions *session.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := resolve(c, tokens, sessions); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// OptionalSession attaches the session when a valid token is present and
// lets anonymous requests through otherwise.
func OptionalSession(tokens *identity.Tokens, sessions *session.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_ = resolve(c, tokens, sessions)
			return next(c)
		}
	}
}

// SessionFrom returns the session attached by either middleware.
func SessionFrom(c echo.Context) (*session.Session, bool) {
	s, ok := c.Get(sessionKey).(*session.Session)
	return s, ok && s != nil
}
