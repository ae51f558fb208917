package domain

import "errors"

var (
	// ErrValidation marks a locally rejected draft; nothing was sent upstream.
	ErrValidation = errors.New("validation failed")
	// ErrNotAuthenticated blocks any role-gated action lacking a live token.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("access forbidden")
	// ErrFetchFailure covers every non-success clinic backend response or
	// transport error. Operations are never retried.
	ErrFetchFailure = errors.New("clinic backend fetch failed")
	// ErrProfileFetch terminates a booking workflow whose patient profile
	// could not be loaded.
	ErrProfileFetch = errors.New("patient profile fetch failed")
	// ErrUnknownForm is a configuration error: a modal kind outside the
	// canonical set. It must fail loudly, never render a stale form.
	ErrUnknownForm = errors.New("unknown modal form kind")
	// ErrInvalidTransition reports a booking workflow driven out of order.
	ErrInvalidTransition = errors.New("invalid workflow transition")
	// ErrSuperseded marks a query response that arrived after a newer query
	// for the same surface began; its result must be discarded, not rendered.
	ErrSuperseded = errors.New("query superseded by a newer request")
	// ErrSessionNotFound is returned by the session store on a cache miss.
	ErrSessionNotFound = errors.New("session not found")
)
