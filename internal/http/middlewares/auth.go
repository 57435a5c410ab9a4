package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-desk.com/task-desk/internal/auth"
	"task-desk.com/task-desk/internal/services"
)

const currentUserKey = "currentUser"

// RequireAuth verifies the bearer token and stores the current user identity
// on the request context for the handlers below it.
func RequireAuth(tokens *auth.TokenProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			userID, role, err := tokens.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired access token")
			}

			c.Set(currentUserKey, services.CurrentUser{UserID: userID, Role: role})
			return next(c)
		}
	}
}

// CurrentUserFrom returns the identity set by RequireAuth. The zero value
// means the route was not behind the middleware.
func CurrentUserFrom(c echo.Context) services.CurrentUser {
	if u, ok := c.Get(currentUserKey).(services.CurrentUser); ok {
		return u
	}
	return services.CurrentUser{}
}
