package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

type stubAppointmentService struct {
	scheduleIn  ports.ScheduleAppointmentInput
	scheduleErr error
	filterIn    ports.AppointmentFilter
	updates     map[int]domain.AppointmentStatus
	deleted     []int
	deleteErr   error
	updateErr   error
}

func newStubAppointmentService() *stubAppointmentService {
	return &stubAppointmentService{updates: make(map[int]domain.AppointmentStatus)}
}

func (s *stubAppointmentService) List(_ context.Context) ([]domain.Appointment, error) {
	return []domain.Appointment{{ID: 1}}, nil
}

func (s *stubAppointmentService) Filter(_ context.Context, f ports.AppointmentFilter) ([]domain.Appointment, error) {
	s.filterIn = f
	return nil, nil
}

func (s *stubAppointmentService) Schedule(_ context.Context, in ports.ScheduleAppointmentInput) (*domain.Appointment, error) {
	s.scheduleIn = in
	if s.scheduleErr != nil {
		return nil, s.scheduleErr
	}
	return &domain.Appointment{
		ID:              42,
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AppointmentDate: in.AppointmentDate,
		Reason:          in.Reason,
		Status:          domain.AppointmentScheduled,
	}, nil
}

func (s *stubAppointmentService) UpdateStatus(_ context.Context, id int, status domain.AppointmentStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updates[id] = status
	return nil
}

func (s *stubAppointmentService) Delete(_ context.Context, id int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestAppointmentHandler_Schedule(t *testing.T) {
	svc := newStubAppointmentService()
	h := NewAppointmentHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/appointments",
		`{"patient_id":3,"doctor_id":5,"appointment_date":"2026-03-14T09:30:00Z","reason":"checkup"}`)
	if err := h.Schedule(c); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Appointment scheduled successfully!" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if id, _ := body["appointment_id"].(float64); int(id) != 42 {
		t.Fatalf("expected appointment_id 42, got %v", body["appointment_id"])
	}

	want := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	if !svc.scheduleIn.AppointmentDate.Equal(want) {
		t.Fatalf("expected date %v forwarded, got %v", want, svc.scheduleIn.AppointmentDate)
	}
}

func TestAppointmentHandler_Schedule_InvalidPayload(t *testing.T) {
	h := NewAppointmentHandler(newStubAppointmentService())

	cases := map[string]string{
		"missing patient": `{"doctor_id":5,"appointment_date":"2026-03-14T09:30:00Z","reason":"checkup"}`,
		"zero doctor":     `{"patient_id":3,"doctor_id":0,"appointment_date":"2026-03-14T09:30:00Z","reason":"checkup"}`,
		"missing reason":  `{"patient_id":3,"doctor_id":5,"appointment_date":"2026-03-14T09:30:00Z"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/appointments", body)
			err := h.Schedule(c)
			var httpErr *echo.HTTPError
			if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestAppointmentHandler_Filter(t *testing.T) {
	svc := newStubAppointmentService()
	h := NewAppointmentHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/appointments/filter?date=2026-03-14&status=Scheduled", "")
	if err := h.Filter(c); err != nil {
		t.Fatalf("filter failed: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.filterIn.Date != "2026-03-14" || svc.filterIn.Status != "Scheduled" {
		t.Fatalf("unexpected filter forwarded: %+v", svc.filterIn)
	}
}

func TestAppointmentHandler_UpdateStatus(t *testing.T) {
	svc := newStubAppointmentService()
	h := NewAppointmentHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/appointments/7", `{"status":"Completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updates[7] != domain.AppointmentCompleted {
		t.Fatalf("expected status Completed for id 7, got %v", svc.updates)
	}
}

func TestAppointmentHandler_UpdateStatus_UnknownStatus(t *testing.T) {
	h := NewAppointmentHandler(newStubAppointmentService())

	c, _ := newTestContext(http.MethodPut, "/appointments/7", `{"status":"Rescheduled"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	err := h.UpdateStatus(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if msg, _ := httpErr.Message.(string); !strings.Contains(msg, "one of") {
		t.Fatalf("expected oneof validation message, got %v", httpErr.Message)
	}
}

func TestAppointmentHandler_Delete(t *testing.T) {
	svc := newStubAppointmentService()
	h := NewAppointmentHandler(svc)

	c, rec := newTestContext(http.MethodDelete, "/appointments/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != 9 {
		t.Fatalf("expected id 9 deleted, got %v", svc.deleted)
	}
}

func TestAppointmentHandler_Delete_NotFound(t *testing.T) {
	svc := newStubAppointmentService()
	svc.deleteErr = domain.ErrAppointmentNotFound
	h := NewAppointmentHandler(svc)

	c, _ := newTestContext(http.MethodDelete, "/appointments/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := h.Delete(c); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound to propagate, got %v", err)
	}
}

func TestAppointmentHandler_BadID(t *testing.T) {
	h := NewAppointmentHandler(newStubAppointmentService())

	c, _ := newTestContext(http.MethodDelete, "/appointments/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	err := h.Delete(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %v", err)
	}
}
