package ports

import (
	"context"

	"github.com/smartclinic/portal/internal/core/domain"
)

// DirectoryClient is the outbound client for the clinic backend's doctor
// endpoints. Implementations convert every non-success response or transport
// error into domain.ErrFetchFailure at the boundary (401 additionally maps to
// domain.ErrNotAuthenticated so callers can invalidate the session).
type DirectoryClient interface {
	// ListDoctors fetches the full directory. Zero doctors is an empty
	// slice, never an error.
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	// FilterDoctors queries by normalized criteria; every position must
	// already carry domain.NullFilter when unconstrained.
	FilterDoctors(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Doctor, error)
	// CreateDoctor submits a validated draft and returns the backend message.
	CreateDoctor(ctx context.Context, draft domain.DoctorDraft, token string) (string, error)
	DeleteDoctor(ctx context.Context, id int64, token string) error
}

// AppointmentClient is the outbound client for appointment endpoints.
type AppointmentClient interface {
	// ListAppointments returns the doctor's appointments for a date,
	// optionally narrowed by patient name (domain.NullFilter when unset).
	ListAppointments(ctx context.Context, date, patientName, token string) ([]domain.Appointment, error)
	// BookAppointment creates an appointment and returns the backend message.
	BookAppointment(ctx context.Context, appt domain.Appointment, token string) (string, error)
	// UpdateAppointment reschedules an existing appointment.
	UpdateAppointment(ctx context.Context, appt domain.Appointment, token string) (string, error)
}

// AuthClient is the outbound client for the clinic backend's credential
// endpoints. Tokens are opaque bearer strings owned by the backend.
type AuthClient interface {
	AdminLogin(ctx context.Context, username, password string) (string, error)
	DoctorLogin(ctx context.Context, identifier, password string) (string, error)
	PatientLogin(ctx context.Context, identifier, password string) (string, error)
	PatientSignup(ctx context.Context, signup domain.PatientSignup) (string, error)
	// PatientProfile resolves the patient owning the given token.
	PatientProfile(ctx context.Context, token string) (*domain.Patient, error)
}
