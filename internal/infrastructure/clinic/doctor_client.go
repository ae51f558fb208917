package clinic

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/smartclinic/portal/internal/core/domain"
)

type doctorsEnvelope struct {
	Doctors []domain.Doctor `json:"doctors"`
}

// ListDoctors fetches the full directory via GET /doctors.
func (c *Client) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	var env doctorsEnvelope
	if err := c.do(ctx, "list_doctors", http.MethodGet, "/doctors", "", nil, &env); err != nil {
		return nil, err
	}
	if env.Doctors == nil {
		return []domain.Doctor{}, nil
	}
	return env.Doctors, nil
}

// FilterDoctors queries GET /doctors/filter/{name}/{time}/{specialty}.
// Criteria must already be normalized: the backend requires all three path
// positions populated, with "null" marking an unconstrained one.
func (c *Client) FilterDoctors(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Doctor, error) {
	path := fmt.Sprintf("/doctors/filter/%s/%s/%s",
		url.PathEscape(criteria.Name),
		url.PathEscape(criteria.Time),
		url.PathEscape(criteria.Specialty),
	)

	var env doctorsEnvelope
	if err := c.do(ctx, "filter_doctors", http.MethodGet, path, "", nil, &env); err != nil {
		return nil, err
	}
	if env.Doctors == nil {
		return []domain.Doctor{}, nil
	}
	return env.Doctors, nil
}

// CreateDoctor submits a draft via POST /doctors with the bearer token.
func (c *Client) CreateDoctor(ctx context.Context, draft domain.DoctorDraft, token string) (string, error) {
	var result statusMessage
	if err := c.do(ctx, "create_doctor", http.MethodPost, "/doctors", token, draft, &result); err != nil {
		return "", err
	}
	if !result.Success {
		return "", fmt.Errorf("create_doctor: %s: %w", result.Message, domain.ErrFetchFailure)
	}
	return result.Message, nil
}

// DeleteDoctor removes a doctor via DELETE /doctors/{id}/{token}. The token
// in the path is the backend's contract, not ours to change.
func (c *Client) DeleteDoctor(ctx context.Context, id int64, token string) error {
	path := fmt.Sprintf("/doctors/%d/%s", id, url.PathEscape(token))

	var result statusMessage
	if err := c.do(ctx, "delete_doctor", http.MethodDelete, path, "", nil, &result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("delete_doctor: %w", domain.ErrFetchFailure)
	}
	return nil
}
