// Package clinic implements the outbound REST client for the remote clinic
// backend. The backend contract is external and fixed: path-based filter
// endpoints require the "null" placeholder in every position, and some
// endpoints carry the bearer token as a path segment.
//
// Every non-success response or transport error is converted to
// domain.ErrFetchFailure at this boundary; a 401 maps to
// domain.ErrNotAuthenticated so callers can invalidate the session. No call
// is ever retried here.
package clinic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/api/metrics"
	"github.com/smartclinic/portal/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New builds a clinic client. Timeouts are the transport layer's concern and
// surface upstream as fetch failures.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Ping reports whether the backend answers at all; used by readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/doctors", nil)
	if err != nil {
		return fmt.Errorf("clinic ping: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("clinic ping: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}

// statusMessage is the error envelope most backend endpoints use.
type statusMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// do executes one round trip. token, body and out are all optional.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "transport_error").Inc()
		c.log.Error().Err(err).Str("op", op).Msg("clinic backend unreachable")
		return fmt.Errorf("%s: %w: %v", op, domain.ErrFetchFailure, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: status 401: %w", op, domain.ErrNotAuthenticated)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg statusMessage
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		if msg.Message != "" {
			return fmt.Errorf("%s: status %d: %s: %w", op, resp.StatusCode, msg.Message, domain.ErrFetchFailure)
		}
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, domain.ErrFetchFailure)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, domain.ErrFetchFailure)
		}
	}
	return nil
}
