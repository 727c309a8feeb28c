package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces the per-operation staff role at the edge. The role
// itself is asserted by the identity service in front of us; we only gate on
// what it forwarded.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Role"))
			if role == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Ax-Actor-Role"})
			}
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "role " + role + " may not perform this operation"})
			}
			return next(c)
		}
	}
}
