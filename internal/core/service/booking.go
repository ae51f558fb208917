package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

// BookingWorkflow drives one patient booking invocation:
//
//	idle → auth_checked → patient_fetched → overlay_shown → submitted
//
// with cancellation reachable from any state. Instances are single-use and
// the fetched patient profile never outlives the invocation.
type BookingWorkflow struct {
	auth  ports.AuthClient
	appts ports.AppointmentClient
	log   zerolog.Logger

	state   domain.BookingState
	doctor  domain.Doctor
	patient domain.Patient
	token   string
}

func NewBookingWorkflow(auth ports.AuthClient, appts ports.AppointmentClient, log zerolog.Logger) *BookingWorkflow {
	return &BookingWorkflow{auth: auth, appts: appts, log: log, state: domain.BookingIdle}
}

// Start advances the workflow to the overlay. A missing token rejects the
// first transition with ErrNotAuthenticated before any network call; a failed
// profile fetch terminates the invocation with ErrProfileFetch.
func (w *BookingWorkflow) Start(ctx context.Context, doctor domain.Doctor, token string) (*ports.BookingOverlay, error) {
	if w.state != domain.BookingIdle {
		return nil, fmt.Errorf("%w: start from %s", domain.ErrInvalidTransition, w.state)
	}
	if token == "" {
		// Transition rejected: the workflow stays idle, nothing was fetched.
		return nil, domain.ErrNotAuthenticated
	}
	if err := w.advance(domain.BookingAuthChecked); err != nil {
		return nil, err
	}
	w.doctor = doctor
	w.token = token

	patient, err := w.auth.PatientProfile(ctx, token)
	if err != nil {
		w.state = domain.BookingCancelled
		w.log.Error().Err(err).Int64("doctor_id", doctor.ID).Msg("booking aborted: profile fetch failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrProfileFetch, err)
	}
	if err := w.advance(domain.BookingPatientFetched); err != nil {
		return nil, err
	}
	w.patient = *patient

	// Presenting the overlay is purely presentational.
	if err := w.advance(domain.BookingOverlayShown); err != nil {
		return nil, err
	}
	return &ports.BookingOverlay{
		Doctor:         doctor,
		Patient:        *patient,
		AvailableSlots: doctor.AvailableTimes,
	}, nil
}

// Submit books the chosen slot. On backend rejection the workflow stays at
// the overlay and the server message is surfaced through the error.
func (w *BookingWorkflow) Submit(ctx context.Context, slot, date string) (string, error) {
	if w.state != domain.BookingOverlayShown {
		return "", fmt.Errorf("%w: submit from %s", domain.ErrInvalidTransition, w.state)
	}

	appt := domain.Appointment{
		DoctorID:  w.doctor.ID,
		PatientID: w.patient.ID,
		Date:      date,
		Time:      slot,
	}
	msg, err := w.appts.BookAppointment(ctx, appt, w.token)
	if err != nil {
		w.log.Error().Err(err).Int64("doctor_id", w.doctor.ID).Msg("booking submit failed")
		return "", err
	}

	if err := w.advance(domain.BookingSubmitted); err != nil {
		return "", err
	}
	w.log.Info().Int64("doctor_id", w.doctor.ID).Str("slot", slot).Str("date", date).Msg("appointment booked")
	return msg, nil
}

// Cancel ends the invocation with no side effects. Cancelling a finished
// workflow is a no-op.
func (w *BookingWorkflow) Cancel() {
	if !w.state.Terminal() {
		w.state = domain.BookingCancelled
	}
}

func (w *BookingWorkflow) State() domain.BookingState {
	return w.state
}

func (w *BookingWorkflow) advance(next domain.BookingState) error {
	if !w.state.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, w.state, next)
	}
	w.state = next
	return nil
}
