package domain

import "strings"

// Doctor is an immutable snapshot from the clinic backend. It is never
// mutated locally; a confirmed delete only removes it from the rendered list.
type Doctor struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Specialty      string   `json:"specialty"`
	AvailableTimes []string `json:"availableTimes"`
}

// DoctorDraft carries the admin "add doctor" form. All fields are required
// before anything goes on the wire; partial drafts fail locally.
type DoctorDraft struct {
	Name           string   `json:"name"           validate:"required"`
	Email          string   `json:"email"          validate:"required,email"`
	Phone          string   `json:"phone"          validate:"required"`
	Password       string   `json:"password"       validate:"required"`
	Specialty      string   `json:"specialty"      validate:"required"`
	AvailableTimes []string `json:"availableTimes" validate:"required,min=1,dive,required"`
}

// NullFilter is the explicit "no constraint" sentinel. The clinic backend's
// path-based filter endpoint requires all three positions populated, so an
// empty constraint is always encoded as this marker and never as "".
const NullFilter = "null"

// FilterCriteria is rebuilt from input state on every filter event.
type FilterCriteria struct {
	Name      string `json:"name"`
	Time      string `json:"time"`
	Specialty string `json:"specialty"`
}

// Normalize trims each constraint and replaces empty ones with NullFilter.
// Query layers must only ever see normalized criteria.
func (f FilterCriteria) Normalize() FilterCriteria {
	return FilterCriteria{
		Name:      FilterTerm(f.Name),
		Time:      FilterTerm(f.Time),
		Specialty: FilterTerm(f.Specialty),
	}
}

// Empty reports whether no constraint is set (after normalization).
func (f FilterCriteria) Empty() bool {
	n := f.Normalize()
	return n.Name == NullFilter && n.Time == NullFilter && n.Specialty == NullFilter
}

// FilterTerm normalizes a single constraint to its wire form.
func FilterTerm(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullFilter
	}
	return s
}
