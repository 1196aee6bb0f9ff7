package domain

import "time"

// AppointmentStatus is the scheduling state of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// Appointment links a patient and a doctor at a point in time.
type Appointment struct {
	ID              int               `json:"appointment_id"`
	PatientID       int               `json:"patient_id"`
	DoctorID        int               `json:"doctor_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Reason          string            `json:"reason"`
	Status          AppointmentStatus `json:"status"`
}
