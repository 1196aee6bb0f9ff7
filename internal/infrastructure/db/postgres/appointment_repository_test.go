package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

func TestAppointmentRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAppointmentRepository(mock)

	date := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO appointments`).
		WithArgs(3, 5, date, "checkup", "Scheduled").
		WillReturnRows(pgxmock.NewRows([]string{"appointment_id"}).AddRow(11))

	id, err := repo.Create(context.Background(), &domain.Appointment{
		PatientID:       3,
		DoctorID:        5,
		AppointmentDate: date,
		Reason:          "checkup",
		Status:          domain.AppointmentScheduled,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected returned id 11, got %d", id)
	}

	expectationsMet(t, mock)
}

func TestAppointmentRepository_Filter(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAppointmentRepository(mock)

	date := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"appointment_id", "patient_id", "doctor_id", "appointment_date", "reason", "status"}).
		AddRow(1, 3, 5, date, "checkup", "Scheduled")

	mock.ExpectQuery(`FROM appointments WHERE 1=1 AND appointment_date::date = \$1::date AND status = \$2`).
		WithArgs("2026-03-14", "Scheduled").
		WillReturnRows(rows)

	got, err := repo.Filter(context.Background(), ports.AppointmentFilter{Date: "2026-03-14", Status: "Scheduled"})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 || got[0].Status != domain.AppointmentScheduled {
		t.Fatalf("unexpected result: %+v", got)
	}

	expectationsMet(t, mock)
}

func TestAppointmentRepository_Filter_NoCriteria(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAppointmentRepository(mock)

	mock.ExpectQuery(`FROM appointments WHERE 1=1 ORDER BY appointment_id`).
		WillReturnRows(pgxmock.NewRows([]string{"appointment_id", "patient_id", "doctor_id", "appointment_date", "reason", "status"}))

	got, err := repo.Filter(context.Background(), ports.AppointmentFilter{})
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}

	expectationsMet(t, mock)
}

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAppointmentRepository(mock)

	mock.ExpectExec(`UPDATE appointments SET status = \$1 WHERE appointment_id = \$2`).
		WithArgs("Completed", 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.UpdateStatus(context.Background(), 7, domain.AppointmentCompleted); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	expectationsMet(t, mock)
}

func TestAppointmentRepository_UpdateStatus_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAppointmentRepository(mock)

	mock.ExpectExec(`UPDATE appointments SET status = \$1 WHERE appointment_id = \$2`).
		WithArgs("Cancelled", 99).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), 99, domain.AppointmentCancelled)
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound for zero affected rows, got %v", err)
	}

	expectationsMet(t, mock)
}

func TestAppointmentRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAppointmentRepository(mock)

	mock.ExpectExec(`DELETE FROM appointments WHERE appointment_id = \$1`).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	expectationsMet(t, mock)
}

func TestAppointmentRepository_Delete_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAppointmentRepository(mock)

	mock.ExpectExec(`DELETE FROM appointments WHERE appointment_id = \$1`).
		WithArgs(99).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 99)
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound for zero affected rows, got %v", err)
	}

	expectationsMet(t, mock)
}
