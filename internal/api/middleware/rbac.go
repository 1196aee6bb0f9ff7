package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthealthcare/clinic-api/internal/api/metrics"
	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// RBAC enforces role-based access control: the role attached by Auth must be
// a member of the route's allowed set. Runs after Auth only.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
