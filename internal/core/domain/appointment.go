package domain

// Appointment mirrors the clinic backend record. The client holds no identity
// for it beyond the backend-assigned id.
type Appointment struct {
	ID           int64  `json:"id"`
	DoctorID     int64  `json:"doctorId"`
	PatientID    int64  `json:"patientId"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail"`
	PatientPhone string `json:"patientPhone"`
	Date         string `json:"appointmentDate"`
	Time         string `json:"appointmentTime"`
	Status       string `json:"status"`
}
