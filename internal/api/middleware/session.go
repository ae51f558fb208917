package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

// SessionCookie is the browser cookie carrying the portal session id.
const SessionCookie = "clinic_session"

// RoleCookie carries the pre-login role choice. Only the patient choice has
// portal-side behavior: it switches doctor cards to the Book Now prompt
// before any credentials exist. An authenticated session always wins.
const RoleCookie = "clinic_role"

// Session resolves the ambient session and injects role/token into the echo
// context. Missing or expired sessions degrade to anonymous; public routes
// still render their info-only views.
func Session(sessions ports.SessionContext) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie.Value
			}

			sess := sessions.Resolve(c.Request().Context(), id)
			role := sess.Role
			if role == domain.RoleAnonymous {
				if cookie, err := c.Cookie(RoleCookie); err == nil && cookie.Value == string(domain.RolePatient) {
					role = domain.RolePatient
				}
			}

			c.Set("session_id", id)
			c.Set("role", string(role))
			c.Set("token", sess.Token)

			return next(c)
		}
	}
}

// ExpireSessionCookie tells the browser to drop the session cookie. Used on
// logout and whenever the backend rejects the stored token.
func ExpireSessionCookie(c echo.Context) {
	expireCookie(c, SessionCookie)
}

// ExpireRoleCookie drops the pre-login role choice.
func ExpireRoleCookie(c echo.Context) {
	expireCookie(c, RoleCookie)
}

func expireCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
