package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

const defaultSessionTTL = 12 * time.Hour

// SessionContext is the sole authority over the ambient auth/role state.
// Sessions are written only by server-confirmed login/signup (Establish) and
// explicit logout or authorization failure (Clear); everything else reads.
type SessionContext struct {
	store ports.SessionStore
	ttl   time.Duration
	log   zerolog.Logger
}

func NewSessionContext(store ports.SessionStore, ttl time.Duration, log zerolog.Logger) *SessionContext {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionContext{store: store, ttl: ttl, log: log}
}

// Establish persists a new session after a server-confirmed login or signup
// and returns its id for the browser cookie.
func (s *SessionContext) Establish(ctx context.Context, token string, role domain.Role) (string, error) {
	if token == "" || !role.Authenticated() {
		return "", domain.ErrNotAuthenticated
	}

	id, err := newSessionID()
	if err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}

	if err := s.store.Save(ctx, id, domain.Session{Token: token, Role: role}, s.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	s.log.Info().Str("role", string(role)).Msg("session established")
	return id, nil
}

// Resolve loads the session for id, degrading to anonymous on a missing,
// unreadable or expired record. An expired token is cleared eagerly so no
// later call can proceed with it.
func (s *SessionContext) Resolve(ctx context.Context, id string) domain.Session {
	if id == "" {
		return domain.Anonymous
	}

	sess, err := s.store.Find(ctx, id)
	if err != nil {
		return domain.Anonymous
	}
	if sess.Token == "" {
		return domain.Anonymous
	}
	if tokenExpired(sess.Token, time.Now()) {
		if err := s.Clear(ctx, id); err != nil {
			s.log.Warn().Err(err).Msg("failed to clear expired session")
		}
		return domain.Anonymous
	}

	return sess
}

// Clear invalidates the session. Idempotent: clearing an absent session is
// not an error.
func (s *SessionContext) Clear(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// tokenExpired peeks at the token's exp claim without verifying the
// signature; verification is the clinic backend's job. Opaque non-JWT tokens
// cannot be inspected and are treated as live until the backend rejects them.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
