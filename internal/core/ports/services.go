package ports

import (
	"context"

	"github.com/smartclinic/portal/internal/core/domain"
)

// DirectoryService exposes the doctor directory to the portal surface.
type DirectoryService interface {
	// ListAll fetches the full directory.
	ListAll(ctx context.Context) ([]domain.Doctor, error)
	// Filter fetches the directory narrowed by criteria. Criteria are
	// normalized internally; filtering with no constraints is equivalent to
	// ListAll. When a newer query on the same surface has started before
	// this one's response lands, the result is discarded and
	// domain.ErrSuperseded is returned.
	Filter(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Doctor, error)
}

// BoardQueryInput carries the doctor board's query state.
type BoardQueryInput struct {
	// Date is the selected day in YYYY-MM-DD form.
	Date string
	// PatientName narrows rows by patient; empty means no constraint.
	PatientName string
	Token       string
}

// AppointmentService exposes appointment reads and mutations.
type AppointmentService interface {
	ListForDoctor(ctx context.Context, input BoardQueryInput) ([]domain.Appointment, error)
	Update(ctx context.Context, appt domain.Appointment, token string) (string, error)
}

// AdminDirectoryService performs admin mutations on the directory.
type AdminDirectoryService interface {
	// Create validates the draft locally before any network call; partial
	// drafts fail with domain.ErrValidation.
	Create(ctx context.Context, draft domain.DoctorDraft, token string) (string, error)
	Delete(ctx context.Context, id int64, token string) error
}

// BookingOverlay is the data presented for slot selection: doctor, patient
// and the doctor's open slots. Composing it has no network effect beyond the
// fetches that produced it.
type BookingOverlay struct {
	Doctor         domain.Doctor  `json:"doctor"`
	Patient        domain.Patient `json:"patient"`
	AvailableSlots []string       `json:"availableSlots"`
}

// BookingWorkflow drives one patient booking invocation through its states.
// A workflow instance is single-use; patient data fetched by Start does not
// outlive the invocation.
type BookingWorkflow interface {
	// Start runs idle → auth check → patient fetch → overlay. A missing
	// token rejects the first transition with domain.ErrNotAuthenticated
	// before any network call.
	Start(ctx context.Context, doctor domain.Doctor, token string) (*BookingOverlay, error)
	// Submit books the chosen slot. On failure the workflow stays at the
	// overlay so the user can retry with a fresh action.
	Submit(ctx context.Context, slot, date string) (string, error)
	// Cancel ends the invocation from any state with no side effects.
	Cancel()
	State() domain.BookingState
}

// BookingWorkflowFactory builds a fresh workflow per invocation.
type BookingWorkflowFactory func() BookingWorkflow
