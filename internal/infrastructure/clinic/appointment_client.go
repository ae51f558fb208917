package clinic

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/smartclinic/portal/internal/core/domain"
)

type appointmentsEnvelope struct {
	Appointments []domain.Appointment `json:"appointments"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

// ListAppointments fetches a doctor's records for one day via
// GET /appointments/{date}/{patientName}/{token}. patientName must already be
// the normalized term ("null" when unconstrained).
func (c *Client) ListAppointments(ctx context.Context, date, patientName, token string) ([]domain.Appointment, error) {
	path := fmt.Sprintf("/appointments/%s/%s/%s",
		url.PathEscape(date),
		url.PathEscape(patientName),
		url.PathEscape(token),
	)

	var env appointmentsEnvelope
	if err := c.do(ctx, "list_appointments", http.MethodGet, path, "", nil, &env); err != nil {
		return nil, err
	}
	if env.Appointments == nil {
		return []domain.Appointment{}, nil
	}
	return env.Appointments, nil
}

// BookAppointment creates a record via POST /appointments/{token}.
func (c *Client) BookAppointment(ctx context.Context, appt domain.Appointment, token string) (string, error) {
	var env messageEnvelope
	err := c.do(ctx, "book_appointment", http.MethodPost, "/appointments/"+url.PathEscape(token), "", appt, &env)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// UpdateAppointment reschedules a record via PUT /appointments/{token}.
func (c *Client) UpdateAppointment(ctx context.Context, appt domain.Appointment, token string) (string, error) {
	var env messageEnvelope
	err := c.do(ctx, "update_appointment", http.MethodPut, "/appointments/"+url.PathEscape(token), "", appt, &env)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
