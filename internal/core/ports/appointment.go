package ports

import (
	"context"
	"time"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
)

// AppointmentFilter narrows appointment listings. Date is a calendar day in
// YYYY-MM-DD form matched against the appointment date; Status matches
// exactly. Empty fields are ignored.
type AppointmentFilter struct {
	Date   string
	Status string
}

// ScheduleAppointmentInput carries the fields required to book an
// appointment. New appointments always start out Scheduled.
type ScheduleAppointmentInput struct {
	PatientID       int
	DoctorID        int
	AppointmentDate time.Time
	Reason          string
}

type AppointmentRepository interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	Filter(ctx context.Context, f AppointmentFilter) ([]domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (int, error)
	UpdateStatus(ctx context.Context, id int, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int) error
}

type AppointmentService interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	Filter(ctx context.Context, f AppointmentFilter) ([]domain.Appointment, error)

	// Schedule books the appointment and broadcasts a NEW_APPOINTMENT event
	// to all connected listeners. Broadcast delivery is best-effort and never
	// fails the booking.
	Schedule(ctx context.Context, in ScheduleAppointmentInput) (*domain.Appointment, error)

	UpdateStatus(ctx context.Context, id int, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int) error
}
