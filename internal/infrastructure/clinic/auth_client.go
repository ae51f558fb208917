package clinic

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/smartclinic/portal/internal/core/domain"
)

type tokenEnvelope struct {
	Token string `json:"token"`
}

type adminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// identifierCredentials is the login shape shared by doctors and patients.
type identifierCredentials struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// AdminLogin exchanges admin credentials for a token via POST /admin/login.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (string, error) {
	return c.login(ctx, "admin_login", "/admin/login", adminCredentials{Username: username, Password: password})
}

// DoctorLogin exchanges doctor credentials for a token via POST /doctor/login.
func (c *Client) DoctorLogin(ctx context.Context, identifier, password string) (string, error) {
	return c.login(ctx, "doctor_login", "/doctor/login", identifierCredentials{Identifier: identifier, Password: password})
}

// PatientLogin exchanges patient credentials for a token via POST /patient/login.
func (c *Client) PatientLogin(ctx context.Context, identifier, password string) (string, error) {
	return c.login(ctx, "patient_login", "/patient/login", identifierCredentials{Identifier: identifier, Password: password})
}

func (c *Client) login(ctx context.Context, op, path string, credentials any) (string, error) {
	var env tokenEnvelope
	if err := c.do(ctx, op, http.MethodPost, path, "", credentials, &env); err != nil {
		return "", err
	}
	if env.Token == "" {
		return "", fmt.Errorf("%s: empty token in response: %w", op, domain.ErrFetchFailure)
	}
	return env.Token, nil
}

// PatientSignup registers a new patient via POST /patient.
func (c *Client) PatientSignup(ctx context.Context, signup domain.PatientSignup) (string, error) {
	var result statusMessage
	if err := c.do(ctx, "patient_signup", http.MethodPost, "/patient", "", signup, &result); err != nil {
		return "", err
	}
	if !result.Success {
		return "", fmt.Errorf("patient_signup: %s: %w", result.Message, domain.ErrFetchFailure)
	}
	return result.Message, nil
}

// PatientProfile resolves the patient owning the token via GET /patient/{token}.
func (c *Client) PatientProfile(ctx context.Context, token string) (*domain.Patient, error) {
	var patient domain.Patient
	if err := c.do(ctx, "patient_profile", http.MethodGet, "/patient/"+url.PathEscape(token), "", nil, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}
