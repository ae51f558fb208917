package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

// Appointments serves the doctor-facing appointment board and the patient
// mutation calls.
type Appointments struct {
	clinic ports.AppointmentClient
	guard  queryGuard
	log    zerolog.Logger
}

func NewAppointments(clinic ports.AppointmentClient, log zerolog.Logger) *Appointments {
	return &Appointments{clinic: clinic, log: log}
}

// ListForDoctor fetches the board rows for a date and optional patient name.
// The date defaults to today; the name is encoded with the null sentinel.
// Keystroke-driven reloads share one surface, so stale responses are dropped.
func (s *Appointments) ListForDoctor(ctx context.Context, input ports.BoardQueryInput) ([]domain.Appointment, error) {
	if input.Token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	name := domain.FilterTerm(input.PatientName)

	seq := s.guard.begin()
	appts, err := s.clinic.ListAppointments(ctx, date, name, input.Token)
	if err != nil {
		s.log.Error().Err(err).Str("date", date).Msg("appointment board fetch failed")
		return nil, err
	}
	if !s.guard.latest(seq) {
		s.log.Debug().Uint64("seq", seq).Msg("discarding superseded board query")
		return nil, domain.ErrSuperseded
	}
	return appts, nil
}

// Update reschedules an existing appointment and returns the backend message.
func (s *Appointments) Update(ctx context.Context, appt domain.Appointment, token string) (string, error) {
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}

	msg, err := s.clinic.UpdateAppointment(ctx, appt, token)
	if err != nil {
		s.log.Error().Err(err).Int64("appointment_id", appt.ID).Msg("appointment update failed")
		return "", err
	}
	s.log.Info().Int64("appointment_id", appt.ID).Msg("appointment updated")
	return msg, nil
}
