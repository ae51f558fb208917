package view

import (
	"testing"

	"github.com/smartclinic/portal/internal/core/domain"
)

func sampleDoctor() domain.Doctor {
	return domain.Doctor{
		ID:             7,
		Name:           "Grace Osei",
		Email:          "g.osei@clinic.example",
		Specialty:      "cardiologist",
		AvailableTimes: []string{"09:00-10:00", "10:00-11:00"},
	}
}

func TestBuildCard_AdminGetsExactlyDelete(t *testing.T) {
	card := BuildCard(sampleDoctor(), domain.RoleAdmin)

	if len(card.Actions) != 1 {
		t.Fatalf("admin card must have exactly one action, got %d", len(card.Actions))
	}
	action := card.Actions[0]
	if action.Kind != ActionDelete {
		t.Fatalf("expected delete action, got %s", action.Kind)
	}
	if action.DoctorID != 7 {
		t.Fatalf("action must target the card's doctor, got %d", action.DoctorID)
	}
	if action.Confirm == "" {
		t.Fatalf("delete must carry a confirmation prompt")
	}
}

func TestBuildCard_AnonymousIsInfoOnly(t *testing.T) {
	card := BuildCard(sampleDoctor(), domain.RoleAnonymous)
	if len(card.Actions) != 0 {
		t.Fatalf("anonymous card must have zero actions, got %d", len(card.Actions))
	}
	if card.Name != "Grace Osei" || card.Specialty != "cardiologist" {
		t.Fatalf("info block missing: %+v", card)
	}
}

func TestBuildCard_DoctorRoleIsInfoOnly(t *testing.T) {
	if card := BuildCard(sampleDoctor(), domain.RoleDoctor); len(card.Actions) != 0 {
		t.Fatalf("doctor card must have zero actions, got %d", len(card.Actions))
	}
}

func TestBuildCard_PatientGetsLoginPrompt(t *testing.T) {
	card := BuildCard(sampleDoctor(), domain.RolePatient)

	if len(card.Actions) != 1 || card.Actions[0].Kind != ActionBookPrompt {
		t.Fatalf("unauthenticated patient must get the login prompt action: %+v", card.Actions)
	}
	if card.Actions[0].Prompt == "" {
		t.Fatalf("prompt action must carry the login message")
	}
}

func TestBuildCard_LoggedPatientGetsBook(t *testing.T) {
	card := BuildCard(sampleDoctor(), domain.RoleLoggedPatient)

	if len(card.Actions) != 1 || card.Actions[0].Kind != ActionBook {
		t.Fatalf("logged patient must get the book action: %+v", card.Actions)
	}
}

func TestBuildCard_JoinsAvailableTimes(t *testing.T) {
	card := BuildCard(sampleDoctor(), domain.RoleAnonymous)
	if card.Available != "09:00-10:00, 10:00-11:00" {
		t.Fatalf("unexpected availability string: %q", card.Available)
	}
}

func TestBuildCards_PreservesOrder(t *testing.T) {
	doctors := []domain.Doctor{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	cards := BuildCards(doctors, domain.RoleAdmin)
	if len(cards) != 2 || cards[0].DoctorID != 1 || cards[1].DoctorID != 2 {
		t.Fatalf("unexpected cards: %+v", cards)
	}
}
