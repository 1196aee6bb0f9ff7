package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

// AppointmentService books and manages appointments and pushes
// NEW_APPOINTMENT events to the broadcaster.
type AppointmentService struct {
	repo        ports.AppointmentRepository
	broadcaster ports.Broadcaster
	log         zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, broadcaster ports.Broadcaster, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, broadcaster: broadcaster, log: log}
}

func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	return s.repo.List(ctx)
}

func (s *AppointmentService) Filter(ctx context.Context, f ports.AppointmentFilter) ([]domain.Appointment, error) {
	return s.repo.Filter(ctx, f)
}

// Schedule books the appointment and notifies all connected listeners.
// The broadcast never fails the booking: listeners get the event
// best-effort after the row is committed.
func (s *AppointmentService) Schedule(ctx context.Context, in ports.ScheduleAppointmentInput) (*domain.Appointment, error) {
	appt := &domain.Appointment{
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AppointmentDate: in.AppointmentDate,
		Reason:          in.Reason,
		Status:          domain.AppointmentScheduled,
	}

	id, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}
	appt.ID = id

	s.log.Info().
		Int("appointment_id", appt.ID).
		Int("patient_id", appt.PatientID).
		Int("doctor_id", appt.DoctorID).
		Msg("appointment scheduled")

	s.broadcaster.Broadcast(domain.Event{
		Type: domain.EventNewAppointment,
		Message: fmt.Sprintf("New appointment scheduled for patient %d with doctor %d on %s",
			appt.PatientID, appt.DoctorID, appt.AppointmentDate.Format("2006-01-02 15:04")),
		Data: appt,
	})

	return appt, nil
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, id int, status domain.AppointmentStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *AppointmentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
