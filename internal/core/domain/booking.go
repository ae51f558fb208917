package domain

// BookingState is the lifecycle state of a single booking workflow invocation.
type BookingState string

const (
	BookingIdle           BookingState = "idle"
	BookingAuthChecked    BookingState = "auth_checked"
	BookingPatientFetched BookingState = "patient_fetched"
	BookingOverlayShown   BookingState = "overlay_shown"
	BookingSubmitted      BookingState = "submitted"
	BookingCancelled      BookingState = "cancelled"
)

// bookingTransitions defines the allowed state machine transitions.
// Cancellation is handled separately: it is reachable from any state.
var bookingTransitions = map[BookingState][]BookingState{
	BookingIdle:           {BookingAuthChecked},
	BookingAuthChecked:    {BookingPatientFetched},
	BookingPatientFetched: {BookingOverlayShown},
	BookingOverlayShown:   {BookingSubmitted},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s BookingState) CanTransitionTo(next BookingState) bool {
	if next == BookingCancelled {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the workflow invocation has ended.
func (s BookingState) Terminal() bool {
	return s == BookingSubmitted || s == BookingCancelled
}
