package view

import "github.com/smartclinic/portal/internal/core/domain"

// BoardRowKind distinguishes data rows from the two informational rows.
type BoardRowKind string

const (
	RowAppointment BoardRowKind = "appointment"
	// RowEmpty is the single informational row for a zero-result day.
	RowEmpty BoardRowKind = "empty"
	// RowError is the single row rendered when the fetch itself failed.
	RowError BoardRowKind = "error"
)

// BoardRow is one row of the doctor's appointment table.
type BoardRow struct {
	Kind          BoardRowKind `json:"kind"`
	AppointmentID int64        `json:"appointmentId,omitempty"`
	PatientID     int64        `json:"patientId,omitempty"`
	PatientName   string       `json:"patientName,omitempty"`
	PatientPhone  string       `json:"patientPhone,omitempty"`
	PatientEmail  string       `json:"patientEmail,omitempty"`
	Time          string       `json:"time,omitempty"`
	Status        string       `json:"status,omitempty"`
	Message       string       `json:"message,omitempty"`
}

// Board is the fully replaced row set for one date/filter combination.
type Board struct {
	Date        string     `json:"date"`
	PatientName string     `json:"patientName,omitempty"`
	Rows        []BoardRow `json:"rows"`
}

// BuildBoard renders the appointment table. An empty result yields exactly
// one informational row, which is not an error state.
func BuildBoard(date, patientName string, appts []domain.Appointment) Board {
	board := Board{Date: date, PatientName: patientName}

	if len(appts) == 0 {
		board.Rows = []BoardRow{{Kind: RowEmpty, Message: "No Appointments found for today."}}
		return board
	}

	board.Rows = make([]BoardRow, 0, len(appts))
	for _, a := range appts {
		board.Rows = append(board.Rows, BoardRow{
			Kind:          RowAppointment,
			AppointmentID: a.ID,
			PatientID:     a.PatientID,
			PatientName:   a.PatientName,
			PatientPhone:  a.PatientPhone,
			PatientEmail:  a.PatientEmail,
			Time:          a.Time,
			Status:        a.Status,
		})
	}
	return board
}

// BuildErrorBoard renders the single error row shown on a failed fetch,
// distinct from the empty-result row.
func BuildErrorBoard(date, patientName string) Board {
	return Board{
		Date:        date,
		PatientName: patientName,
		Rows: []BoardRow{{
			Kind:    RowError,
			Message: "Error loading appointments. Please try again later.",
		}},
	}
}
