package clinic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartclinic/portal/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestListDoctors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/doctors" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"doctors": []domain.Doctor{{ID: 1, Name: "Grace Osei", Specialty: "cardiologist"}},
		})
	})

	doctors, err := client.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("ListDoctors failed: %v", err)
	}
	if len(doctors) != 1 || doctors[0].Name != "Grace Osei" {
		t.Fatalf("unexpected doctors: %+v", doctors)
	}
}

func TestListDoctors_EmptyDirectoryIsNotNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"doctors": nil})
	})

	doctors, err := client.ListDoctors(context.Background())
	if err != nil {
		t.Fatalf("ListDoctors failed: %v", err)
	}
	if doctors == nil || len(doctors) != 0 {
		t.Fatalf("expected non-nil empty slice, got %#v", doctors)
	}
}

func TestFilterDoctors_PathEncodesSentinel(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"doctors": []domain.Doctor{{ID: 2}}})
	})

	criteria := domain.FilterCriteria{Specialty: "dentist"}.Normalize()
	if _, err := client.FilterDoctors(context.Background(), criteria); err != nil {
		t.Fatalf("FilterDoctors failed: %v", err)
	}
	if gotPath != "/doctors/filter/null/null/dentist" {
		t.Fatalf("unconstrained positions must carry the null placeholder, got %q", gotPath)
	}
}

func TestFilterDoctors_EscapesTerms(t *testing.T) {
	var gotEscaped string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotEscaped = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(map[string]any{"doctors": []domain.Doctor{}})
	})

	criteria := domain.FilterCriteria{Name: "ana maria"}.Normalize()
	if _, err := client.FilterDoctors(context.Background(), criteria); err != nil {
		t.Fatalf("FilterDoctors failed: %v", err)
	}
	if gotEscaped != "/doctors/filter/ana%20maria/null/null" {
		t.Fatalf("terms must be path-escaped, got %q", gotEscaped)
	}
}

func TestCreateDoctor_SendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/doctors" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer admin-tok" {
			t.Fatalf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		var draft domain.DoctorDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil || draft.Name != "Grace Osei" {
			t.Fatalf("unexpected body: %+v err=%v", draft, err)
		}
		_ = json.NewEncoder(w).Encode(statusMessage{Success: true, Message: "Doctor added to db"})
	})

	msg, err := client.CreateDoctor(context.Background(), domain.DoctorDraft{Name: "Grace Osei"}, "admin-tok")
	if err != nil {
		t.Fatalf("CreateDoctor failed: %v", err)
	}
	if msg != "Doctor added to db" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestCreateDoctor_BackendRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(statusMessage{Success: false, Message: "Doctor already exists"})
	})

	_, err := client.CreateDoctor(context.Background(), domain.DoctorDraft{}, "tok")
	if !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("expected ErrFetchFailure, got %v", err)
	}
}

func TestDeleteDoctor_TokenInPath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("unexpected method %s", r.Method)
		}
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(statusMessage{Success: true})
	})

	if err := client.DeleteDoctor(context.Background(), 7, "admin-tok"); err != nil {
		t.Fatalf("DeleteDoctor failed: %v", err)
	}
	if gotPath != "/doctors/7/admin-tok" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
}

func TestListAppointments_PathLayout(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{
			"appointments": []domain.Appointment{{ID: 1, PatientName: "Ana"}},
		})
	})

	appts, err := client.ListAppointments(context.Background(), "2024-01-01", "null", "doc-tok")
	if err != nil {
		t.Fatalf("ListAppointments failed: %v", err)
	}
	if gotPath != "/appointments/2024-01-01/null/doc-tok" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if len(appts) != 1 || appts[0].PatientName != "Ana" {
		t.Fatalf("unexpected appointments: %+v", appts)
	}
}

func TestBookAppointment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/appointments/pat-tok" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var appt domain.Appointment
		if err := json.NewDecoder(r.Body).Decode(&appt); err != nil || appt.DoctorID != 3 {
			t.Fatalf("unexpected body: %+v err=%v", appt, err)
		}
		_ = json.NewEncoder(w).Encode(messageEnvelope{Message: "Appointment booked successfully"})
	})

	msg, err := client.BookAppointment(context.Background(), domain.Appointment{DoctorID: 3}, "pat-tok")
	if err != nil {
		t.Fatalf("BookAppointment failed: %v", err)
	}
	if msg != "Appointment booked successfully" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestLogin_TokenEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/login" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		var creds adminCredentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username != "admin" {
			t.Fatalf("unexpected credentials: %+v err=%v", creds, err)
		}
		_ = json.NewEncoder(w).Encode(tokenEnvelope{Token: "tok-abc"})
	})

	token, err := client.AdminLogin(context.Background(), "admin", "pass")
	if err != nil {
		t.Fatalf("AdminLogin failed: %v", err)
	}
	if token != "tok-abc" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestLogin_EmptyTokenIsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(tokenEnvelope{})
	})

	if _, err := client.PatientLogin(context.Background(), "ana@x", "pass"); !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("expected ErrFetchFailure, got %v", err)
	}
}

func TestPatientProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/patient/pat-tok" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(domain.Patient{ID: 42, Name: "Ana"})
	})

	patient, err := client.PatientProfile(context.Background(), "pat-tok")
	if err != nil {
		t.Fatalf("PatientProfile failed: %v", err)
	}
	if patient.ID != 42 || patient.Name != "Ana" {
		t.Fatalf("unexpected patient: %+v", patient)
	}
}

func TestDo_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.ListDoctors(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("401 must map to ErrNotAuthenticated, got %v", err)
	}
}

func TestDo_ServerErrorCarriesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(statusMessage{Message: "database unavailable"})
	})

	_, err := client.ListDoctors(context.Background())
	if !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("5xx must map to ErrFetchFailure, got %v", err)
	}
	if !strings.Contains(err.Error(), "database unavailable") {
		t.Fatalf("backend message must be preserved: %q", err.Error())
	}
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := New(srv.URL, time.Second, zerolog.Nop())

	if _, err := client.ListDoctors(context.Background()); !errors.Is(err, domain.ErrFetchFailure) {
		t.Fatalf("transport error must map to ErrFetchFailure, got %v", err)
	}
}
