package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traincore/coaching-api/internal/api/metrics"
)

// RBAC enforces role-based access control: the caller's resolved role must be
// in the allowed set. Runs after Auth, which guarantees the role is present.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.ForbiddenTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
