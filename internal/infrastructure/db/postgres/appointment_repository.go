package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

const appointmentColumns = "appointment_id, patient_id, doctor_id, appointment_date, reason, status"

type AppointmentRepository struct {
	db Querier
}

func NewAppointmentRepository(db Querier) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) List(ctx context.Context) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, "SELECT "+appointmentColumns+" FROM appointments ORDER BY appointment_id")
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return scanAppointments(rows)
}

// Filter narrows appointments by calendar day and/or exact status.
func (r *AppointmentRepository) Filter(ctx context.Context, f ports.AppointmentFilter) ([]domain.Appointment, error) {
	sql := "SELECT " + appointmentColumns + " FROM appointments WHERE 1=1"
	args := []any{}

	if f.Date != "" {
		args = append(args, f.Date)
		sql += fmt.Sprintf(" AND appointment_date::date = $%d::date", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		sql += fmt.Sprintf(" AND status = $%d", len(args))
	}
	sql += " ORDER BY appointment_id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("filter appointments: %w", err)
	}
	return scanAppointments(rows)
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING appointment_id
	`, a.PatientID, a.DoctorID, a.AppointmentDate, a.Reason, string(a.Status)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert appointment: %w", err)
	}
	return id, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int, status domain.AppointmentStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointments SET status = $1 WHERE appointment_id = $2
	`, string(status), id)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM appointments WHERE appointment_id = $1", id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func scanAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	defer rows.Close()

	appointments := []domain.Appointment{}
	for rows.Next() {
		var (
			a      domain.Appointment
			status string
		)
		if err := rows.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.AppointmentDate, &a.Reason, &status); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		a.Status = domain.AppointmentStatus(status)
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}
