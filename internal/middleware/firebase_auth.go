package middleware

import (
	"net/http"

	"github.com/Pranav210905/fin/internal/identity"
	"github.com/labstack/echo/v4"
)

const firebaseUIDKey = "firebaseUID"

// FirebaseAuthMiddleware verifies the identity-provider ID token carried in
// the Authorization header and stores its uid on the context.
func FirebaseAuthMiddleware(verifier identity.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			idToken, err := bearerToken(c)
			if err != nil {
				return err
			}

			uid, err := verifier.VerifyIDToken(c.Request().Context(), idToken)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired ID token")
			}

			c.Set(firebaseUIDKey, uid)
			return next(c)
		}
	}
}

func FirebaseUID(c echo.Context) string {
	uid, _ := c.Get(firebaseUIDKey).(string)
	return uid
}
