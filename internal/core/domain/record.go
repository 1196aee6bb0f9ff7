package domain

// MedicalRecord stores a diagnosis and prescription issued by a doctor
// for a patient.
type MedicalRecord struct {
	ID           int    `json:"record_id"`
	PatientID    int    `json:"patient_id"`
	DoctorID     int    `json:"doctor_id"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription"`
}
