package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/core/domain"
	"github.com/smartclinic/portal/internal/core/ports"
)

func TestAppointments_ListRequiresToken(t *testing.T) {
	stub := &stubAppointmentClient{}
	svc := NewAppointments(stub, zerolog.Nop())

	_, err := svc.ListForDoctor(context.Background(), ports.BoardQueryInput{Date: "2024-01-01"})
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if stub.listCalls != 0 {
		t.Fatalf("unauthenticated query must never reach the network")
	}
}

func TestAppointments_ListDefaultsDateAndName(t *testing.T) {
	var gotDate, gotName string
	stub := &stubAppointmentClient{
		listFn: func(ctx context.Context, date, patientName, token string) ([]domain.Appointment, error) {
			gotDate, gotName = date, patientName
			return []domain.Appointment{}, nil
		},
	}
	svc := NewAppointments(stub, zerolog.Nop())

	if _, err := svc.ListForDoctor(context.Background(), ports.BoardQueryInput{Token: "tok"}); err != nil {
		t.Fatalf("ListForDoctor failed: %v", err)
	}
	if gotDate != time.Now().UTC().Format("2006-01-02") {
		t.Fatalf("missing date must default to today, got %q", gotDate)
	}
	if gotName != domain.NullFilter {
		t.Fatalf("missing patient name must be the sentinel, got %q", gotName)
	}
}

func TestAppointments_ListPassesTrimmedName(t *testing.T) {
	var gotName string
	stub := &stubAppointmentClient{
		listFn: func(ctx context.Context, date, patientName, token string) ([]domain.Appointment, error) {
			gotName = patientName
			return []domain.Appointment{}, nil
		},
	}
	svc := NewAppointments(stub, zerolog.Nop())

	input := ports.BoardQueryInput{Date: "2024-01-01", PatientName: "  ana  ", Token: "tok"}
	if _, err := svc.ListForDoctor(context.Background(), input); err != nil {
		t.Fatalf("ListForDoctor failed: %v", err)
	}
	if gotName != "ana" {
		t.Fatalf("patient name must be trimmed, got %q", gotName)
	}
}

func TestAppointments_SupersededBoardQueryDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	stub := &stubAppointmentClient{
		listFn: func(ctx context.Context, date, patientName, token string) ([]domain.Appointment, error) {
			if patientName == "a" {
				close(firstStarted)
				<-release
				return []domain.Appointment{{ID: 1}}, nil
			}
			return []domain.Appointment{{ID: 2}}, nil
		},
	}
	svc := NewAppointments(stub, zerolog.Nop())

	firstErr := make(chan error, 1)
	go func() {
		_, err := svc.ListForDoctor(context.Background(), ports.BoardQueryInput{Date: "2024-01-01", PatientName: "a", Token: "tok"})
		firstErr <- err
	}()

	<-firstStarted
	fresh, err := svc.ListForDoctor(context.Background(), ports.BoardQueryInput{Date: "2024-01-01", PatientName: "ab", Token: "tok"})
	if err != nil {
		t.Fatalf("latest query must succeed: %v", err)
	}
	if len(fresh) != 1 || fresh[0].ID != 2 {
		t.Fatalf("latest query must win: %+v", fresh)
	}

	close(release)
	if err := <-firstErr; !errors.Is(err, domain.ErrSuperseded) {
		t.Fatalf("superseded query must report ErrSuperseded, got %v", err)
	}
}

func TestAppointments_UpdateRequiresToken(t *testing.T) {
	stub := &stubAppointmentClient{}
	svc := NewAppointments(stub, zerolog.Nop())

	if _, err := svc.Update(context.Background(), domain.Appointment{ID: 1}, ""); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if stub.updateCalls != 0 {
		t.Fatalf("unauthenticated update must never reach the network")
	}
}

func TestAppointments_UpdateReturnsBackendMessage(t *testing.T) {
	stub := &stubAppointmentClient{
		updateFn: func(ctx context.Context, appt domain.Appointment, token string) (string, error) {
			if appt.ID != 9 || token != "tok" {
				t.Fatalf("unexpected update call: appt=%+v token=%q", appt, token)
			}
			return "Appointment updated", nil
		},
	}
	svc := NewAppointments(stub, zerolog.Nop())

	msg, err := svc.Update(context.Background(), domain.Appointment{ID: 9}, "tok")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if msg != "Appointment updated" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
