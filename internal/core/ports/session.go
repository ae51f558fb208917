package ports

import (
	"context"
	"time"

	"github.com/smartclinic/portal/internal/core/domain"
)

// SessionStore persists sessions so a page reload keeps the user logged in.
// Implementations return domain.ErrSessionNotFound on a miss.
type SessionStore interface {
	Save(ctx context.Context, id string, session domain.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionContext is the ambient auth/role authority consumed by the portal
// surface. Establish is only called after a server-confirmed login/signup;
// Resolve degrades to the anonymous session rather than erroring.
type SessionContext interface {
	Establish(ctx context.Context, token string, role domain.Role) (string, error)
	Resolve(ctx context.Context, id string) domain.Session
	Clear(ctx context.Context, id string) error
}
