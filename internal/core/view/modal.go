package view

import (
	"fmt"

	"github.com/smartclinic/portal/internal/core/domain"
)

// FormKind enumerates the canonical modal forms. There is exactly one kind
// per form; requesting anything outside this set is a configuration error
// that must fail loudly rather than leave a previous form on screen.
type FormKind string

const (
	FormAddDoctor     FormKind = "addDoctor"
	FormPatientLogin  FormKind = "patientLogin"
	FormPatientSignup FormKind = "patientSignup"
	FormAdminLogin    FormKind = "adminLogin"
	FormDoctorLogin   FormKind = "doctorLogin"
)

// FormField describes one input in a modal form.
type FormField struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// FormDescriptor declares a modal form: its fields and submit command.
type FormDescriptor struct {
	Kind         FormKind    `json:"kind"`
	Title        string      `json:"title"`
	Fields       []FormField `json:"fields"`
	SubmitAction string      `json:"submitAction"`
	SubmitLabel  string      `json:"submitLabel"`
}

// ModalState is the visual state of the single modal surface.
type ModalState struct {
	Open bool            `json:"open"`
	Form *FormDescriptor `json:"form,omitempty"`
}

// Specializations is the selectable specialty catalog for the add-doctor form.
var Specializations = []string{
	"cardiologist", "dermatologist", "neurologist", "pediatrician",
	"orthopedic", "gynecologist", "psychiatrist", "dentist",
	"ophthalmologist", "ent", "urologist", "oncologist",
	"gastroenterologist", "general",
}

// AvailabilitySlots is the selectable slot catalog for the add-doctor form.
var AvailabilitySlots = []string{
	"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00",
}

// forms is the single source of truth: one descriptor per enumerated kind.
var forms = map[FormKind]FormDescriptor{
	FormAddDoctor: {
		Kind:  FormAddDoctor,
		Title: "Add Doctor",
		Fields: []FormField{
			{ID: "doctorName", Label: "Doctor Name", Type: "text"},
			{ID: "specialization", Label: "Specialization", Type: "select", Options: Specializations},
			{ID: "doctorEmail", Label: "Email", Type: "email"},
			{ID: "doctorPassword", Label: "Password", Type: "password"},
			{ID: "doctorPhone", Label: "Mobile No.", Type: "text"},
			{ID: "availability", Label: "Select Availability", Type: "checkbox", Options: AvailabilitySlots},
		},
		SubmitAction: "saveDoctor",
		SubmitLabel:  "Save",
	},
	FormPatientLogin: {
		Kind:  FormPatientLogin,
		Title: "Patient Login",
		Fields: []FormField{
			{ID: "patientEmail", Label: "Email", Type: "text"},
			{ID: "patientPassword", Label: "Password", Type: "password"},
		},
		SubmitAction: "patientLogin",
		SubmitLabel:  "Login",
	},
	FormPatientSignup: {
		Kind:  FormPatientSignup,
		Title: "Patient Signup",
		Fields: []FormField{
			{ID: "name", Label: "Name", Type: "text"},
			{ID: "email", Label: "Email", Type: "email"},
			{ID: "password", Label: "Password", Type: "password"},
			{ID: "phone", Label: "Phone", Type: "text"},
			{ID: "address", Label: "Address", Type: "text"},
		},
		SubmitAction: "patientSignup",
		SubmitLabel:  "Signup",
	},
	FormAdminLogin: {
		Kind:  FormAdminLogin,
		Title: "Admin Login",
		Fields: []FormField{
			{ID: "adminUsername", Label: "Username", Type: "text"},
			{ID: "adminPassword", Label: "Password", Type: "password"},
		},
		SubmitAction: "adminLogin",
		SubmitLabel:  "Login",
	},
	FormDoctorLogin: {
		Kind:  FormDoctorLogin,
		Title: "Doctor Login",
		Fields: []FormField{
			{ID: "doctorEmail", Label: "Email", Type: "text"},
			{ID: "doctorPassword", Label: "Password", Type: "password"},
		},
		SubmitAction: "doctorLogin",
		SubmitLabel:  "Login",
	},
}

// OpenModal resolves the descriptor for kind. Unknown kinds return
// domain.ErrUnknownForm; they must never fall through to a stale form.
func OpenModal(kind FormKind) (ModalState, error) {
	form, ok := forms[kind]
	if !ok {
		return ModalState{}, fmt.Errorf("%w: %q", domain.ErrUnknownForm, kind)
	}
	return ModalState{Open: true, Form: &form}, nil
}

// CloseModal returns the closed visual state. Idempotent: it does not matter
// which form, if any, was open.
func CloseModal() ModalState {
	return ModalState{Open: false}
}
