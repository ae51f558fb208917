package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/core/domain"
)

type stubAuthClient struct {
	profileFn    func(ctx context.Context, token string) (*domain.Patient, error)
	profileCalls int
}

func (s *stubAuthClient) AdminLogin(ctx context.Context, username, password string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthClient) DoctorLogin(ctx context.Context, identifier, password string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthClient) PatientLogin(ctx context.Context, identifier, password string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthClient) PatientSignup(ctx context.Context, signup domain.PatientSignup) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthClient) PatientProfile(ctx context.Context, token string) (*domain.Patient, error) {
	s.profileCalls++
	if s.profileFn == nil {
		return &domain.Patient{ID: 42, Name: "Ana"}, nil
	}
	return s.profileFn(ctx, token)
}

type stubAppointmentClient struct {
	listFn   func(ctx context.Context, date, patientName, token string) ([]domain.Appointment, error)
	bookFn   func(ctx context.Context, appt domain.Appointment, token string) (string, error)
	updateFn func(ctx context.Context, appt domain.Appointment, token string) (string, error)

	listCalls   int
	bookCalls   int
	updateCalls int
}

func (s *stubAppointmentClient) ListAppointments(ctx context.Context, date, patientName, token string) ([]domain.Appointment, error) {
	s.listCalls++
	if s.listFn == nil {
		return []domain.Appointment{}, nil
	}
	return s.listFn(ctx, date, patientName, token)
}

func (s *stubAppointmentClient) BookAppointment(ctx context.Context, appt domain.Appointment, token string) (string, error) {
	s.bookCalls++
	if s.bookFn == nil {
		return "booked", nil
	}
	return s.bookFn(ctx, appt, token)
}

func (s *stubAppointmentClient) UpdateAppointment(ctx context.Context, appt domain.Appointment, token string) (string, error) {
	s.updateCalls++
	if s.updateFn == nil {
		return "updated", nil
	}
	return s.updateFn(ctx, appt, token)
}

func bookingDoctor() domain.Doctor {
	return domain.Doctor{ID: 3, Name: "Grace Osei", AvailableTimes: []string{"09:00-10:00", "10:00-11:00"}}
}

func TestBookingWorkflow_MissingTokenNeverHitsTheNetwork(t *testing.T) {
	auth := &stubAuthClient{}
	appts := &stubAppointmentClient{}
	w := NewBookingWorkflow(auth, appts, zerolog.Nop())

	_, err := w.Start(context.Background(), bookingDoctor(), "")
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if auth.profileCalls != 0 || appts.bookCalls != 0 {
		t.Fatalf("no network call may be issued: profile=%d book=%d", auth.profileCalls, appts.bookCalls)
	}
	if w.State() != domain.BookingIdle {
		t.Fatalf("rejected start must leave the workflow idle, got %s", w.State())
	}
}

func TestBookingWorkflow_ProfileFetchFailureTerminates(t *testing.T) {
	auth := &stubAuthClient{
		profileFn: func(ctx context.Context, token string) (*domain.Patient, error) {
			return nil, errors.New("backend down")
		},
	}
	w := NewBookingWorkflow(auth, &stubAppointmentClient{}, zerolog.Nop())

	_, err := w.Start(context.Background(), bookingDoctor(), "tok")
	if !errors.Is(err, domain.ErrProfileFetch) {
		t.Fatalf("expected ErrProfileFetch, got %v", err)
	}
	if w.State() != domain.BookingCancelled {
		t.Fatalf("failed profile fetch must terminate the invocation, got %s", w.State())
	}
	if _, err := w.Submit(context.Background(), "09:00-10:00", "2024-01-01"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("terminated workflow must reject submit, got %v", err)
	}
}

func TestBookingWorkflow_HappyPath(t *testing.T) {
	auth := &stubAuthClient{}
	appts := &stubAppointmentClient{
		bookFn: func(ctx context.Context, appt domain.Appointment, token string) (string, error) {
			if appt.DoctorID != 3 || appt.PatientID != 42 {
				t.Fatalf("booking must carry doctor and patient ids: %+v", appt)
			}
			if appt.Time != "10:00-11:00" || appt.Date != "2024-01-02" {
				t.Fatalf("booking must carry the chosen slot and date: %+v", appt)
			}
			if token != "tok" {
				t.Fatalf("booking must reuse the workflow token, got %q", token)
			}
			return "Appointment booked successfully", nil
		},
	}
	w := NewBookingWorkflow(auth, appts, zerolog.Nop())

	overlay, err := w.Start(context.Background(), bookingDoctor(), "tok")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if w.State() != domain.BookingOverlayShown {
		t.Fatalf("expected overlay_shown, got %s", w.State())
	}
	if overlay.Patient.ID != 42 || overlay.Doctor.ID != 3 {
		t.Fatalf("overlay must carry patient and doctor: %+v", overlay)
	}
	if len(overlay.AvailableSlots) != 2 {
		t.Fatalf("overlay must expose the doctor's slots: %+v", overlay.AvailableSlots)
	}

	msg, err := w.Submit(context.Background(), "10:00-11:00", "2024-01-02")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if msg != "Appointment booked successfully" {
		t.Fatalf("unexpected message: %q", msg)
	}
	if w.State() != domain.BookingSubmitted {
		t.Fatalf("expected submitted, got %s", w.State())
	}
}

func TestBookingWorkflow_RejectedSubmitKeepsOverlayOpen(t *testing.T) {
	fail := true
	appts := &stubAppointmentClient{
		bookFn: func(ctx context.Context, appt domain.Appointment, token string) (string, error) {
			if fail {
				return "", domain.ErrFetchFailure
			}
			return "booked", nil
		},
	}
	w := NewBookingWorkflow(&stubAuthClient{}, appts, zerolog.Nop())

	if _, err := w.Start(context.Background(), bookingDoctor(), "tok"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := w.Submit(context.Background(), "09:00-10:00", "2024-01-01"); !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("expected ErrFetchFailure, got %v", err)
	}
	if w.State() != domain.BookingOverlayShown {
		t.Fatalf("rejected submit must keep the overlay open, got %s", w.State())
	}

	// The patient may retry from the same overlay.
	fail = false
	if _, err := w.Submit(context.Background(), "09:00-10:00", "2024-01-01"); err != nil {
		t.Fatalf("retry must succeed: %v", err)
	}
}

func TestBookingWorkflow_Cancel(t *testing.T) {
	w := NewBookingWorkflow(&stubAuthClient{}, &stubAppointmentClient{}, zerolog.Nop())
	if _, err := w.Start(context.Background(), bookingDoctor(), "tok"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	w.Cancel()
	if w.State() != domain.BookingCancelled {
		t.Fatalf("expected cancelled, got %s", w.State())
	}
	if _, err := w.Submit(context.Background(), "09:00-10:00", "2024-01-01"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("cancelled workflow must reject submit, got %v", err)
	}

	// Cancelling again or after completion is a no-op.
	w.Cancel()
	if w.State() != domain.BookingCancelled {
		t.Fatalf("cancel must be idempotent, got %s", w.State())
	}
}

func TestBookingWorkflow_SingleUse(t *testing.T) {
	w := NewBookingWorkflow(&stubAuthClient{}, &stubAppointmentClient{}, zerolog.Nop())
	if _, err := w.Start(context.Background(), bookingDoctor(), "tok"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := w.Start(context.Background(), bookingDoctor(), "tok"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("second start must be rejected, got %v", err)
	}
}
