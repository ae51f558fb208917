package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/smartclinic/portal/internal/core/domain"
)

// RBAC enforces role-based access control on portal routes. Unauthenticated
// sessions (anonymous or the pre-login patient choice) get ErrNotAuthenticated;
// authenticated sessions with the wrong role get ErrForbidden. Both surface
// through the central error handler.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleStr, _ := c.Get("role").(string)
			role, ok := domain.ParseRole(roleStr)
			if !ok || !role.Authenticated() {
				return domain.ErrNotAuthenticated
			}
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
