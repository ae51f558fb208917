// Package view builds the role-aware view models the browser renders:
// doctor cards, modal form descriptors and the appointment board. Everything
// here is a pure function of domain data plus the live session role; nothing
// is cached, so a login is reflected on the very next render cycle.
package view

import (
	"fmt"
	"strings"

	"github.com/smartclinic/portal/internal/core/domain"
)

// CardActionKind identifies a card control.
type CardActionKind string

const (
	// ActionDelete removes the doctor (admin only, confirmed first).
	ActionDelete CardActionKind = "delete"
	// ActionBook starts the booking workflow (logged-in patients).
	ActionBook CardActionKind = "book"
	// ActionBookPrompt nudges an unauthenticated patient to log in; it
	// triggers no network call.
	ActionBookPrompt CardActionKind = "bookPrompt"
)

// CardAction is one control on a doctor card.
type CardAction struct {
	Kind     CardActionKind `json:"kind"`
	Label    string         `json:"label"`
	DoctorID int64          `json:"doctorId"`
	// Confirm is the confirmation prompt shown before destructive actions.
	Confirm string `json:"confirm,omitempty"`
	// Prompt is the message shown instead of performing the action.
	Prompt string `json:"prompt,omitempty"`
}

// DoctorCard is the rendered summary of one doctor.
type DoctorCard struct {
	DoctorID  int64        `json:"doctorId"`
	Name      string       `json:"name"`
	Specialty string       `json:"specialty"`
	Email     string       `json:"email"`
	Available string       `json:"available"`
	Actions   []CardAction `json:"actions"`
}

// BuildCard composes a card for one doctor under the given role. The role
// must be the session's current one at render time, never a cached copy.
func BuildCard(doctor domain.Doctor, role domain.Role) DoctorCard {
	card := DoctorCard{
		DoctorID:  doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Email:     doctor.Email,
		Available: strings.Join(doctor.AvailableTimes, ", "),
	}

	switch role {
	case domain.RoleAdmin:
		card.Actions = []CardAction{{
			Kind:     ActionDelete,
			Label:    "Delete",
			DoctorID: doctor.ID,
			Confirm:  fmt.Sprintf("Are you sure you want to delete Dr. %s?", doctor.Name),
		}}
	case domain.RolePatient:
		card.Actions = []CardAction{{
			Kind:     ActionBookPrompt,
			Label:    "Book Now",
			DoctorID: doctor.ID,
			Prompt:   "Please log in to book an appointment.",
		}}
	case domain.RoleLoggedPatient:
		card.Actions = []CardAction{{
			Kind:     ActionBook,
			Label:    "Book Now",
			DoctorID: doctor.ID,
		}}
	}
	// Anonymous and doctor sessions get an info-only card.

	return card
}

// BuildCards renders a directory slice in order.
func BuildCards(doctors []domain.Doctor, role domain.Role) []DoctorCard {
	cards := make([]DoctorCard, 0, len(doctors))
	for _, d := range doctors {
		cards = append(cards, BuildCard(d, role))
	}
	return cards
}
