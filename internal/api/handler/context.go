package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/smartclinic/portal/internal/core/domain"
)

// ctxSession reads the ambient session injected by the Session middleware.
// The token must be read this way immediately before each authenticated
// call; it is never cached in a handler or view.
func ctxSession(c echo.Context) (role domain.Role, token, sessionID string) {
	roleStr, _ := c.Get("role").(string)
	role, ok := domain.ParseRole(roleStr)
	if !ok {
		role = domain.RoleAnonymous
	}
	token, _ = c.Get("token").(string)
	sessionID, _ = c.Get("session_id").(string)
	return role, token, sessionID
}
