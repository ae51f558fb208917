package domain

// Role gates which portal actions are available to the current session.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	// RolePatient is a known patient browsing without an authenticated session.
	RolePatient Role = "patient"
	// RoleLoggedPatient is a patient with a confirmed login.
	RoleLoggedPatient Role = "loggedPatient"
)

// ParseRole maps a stored role string back to a Role. Unknown values report
// false so callers can fail loudly instead of degrading to a guessed role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RolePatient, RoleLoggedPatient, RoleAnonymous:
		return Role(s), true
	}
	return RoleAnonymous, false
}

// Authenticated reports whether the role carries a server-confirmed token.
func (r Role) Authenticated() bool {
	return r == RoleAdmin || r == RoleDoctor || r == RoleLoggedPatient
}

// Session is the single source of truth for role-gated behaviour.
// An empty token always means anonymous, regardless of the stored role.
type Session struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
}

// Anonymous is the zero-value session used whenever no valid session exists.
var Anonymous = Session{Role: RoleAnonymous}
