package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smarthealthcare/clinic-api/internal/api/metrics"
	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type scheduleAppointmentRequest struct {
	PatientID       int       `json:"patient_id"       validate:"required,gt=0"`
	DoctorID        int       `json:"doctor_id"        validate:"required,gt=0"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Reason          string    `json:"reason"           validate:"required"`
}

type updateAppointmentRequest struct {
	Status string `json:"status" validate:"required,oneof=Scheduled Completed Cancelled"`
}

// List handles GET /appointments.
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Filter handles GET /appointments/filter with optional date (YYYY-MM-DD)
// and status query parameters.
//
// @Summary      Filter appointments by date and status
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        date    query     string  false  "Calendar day (YYYY-MM-DD)"
// @Param        status  query     string  false  "Exact status"
// @Success      200     {array}   domain.Appointment
// @Router       /appointments/filter [get]
func (h *AppointmentHandler) Filter(c echo.Context) error {
	appointments, err := h.service.Filter(c.Request().Context(), ports.AppointmentFilter{
		Date:   c.QueryParam("date"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Schedule handles POST /appointments: books the appointment and broadcasts
// a NEW_APPOINTMENT event to all connected listeners.
//
// @Summary      Schedule an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scheduleAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Schedule(c echo.Context) error {
	var req scheduleAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Schedule(c.Request().Context(), ports.ScheduleAppointmentInput{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]any{
		"message":        "Appointment scheduled successfully!",
		"appointment_id": appt.ID,
	})
}

// UpdateStatus handles PUT /appointments/:id. Only the status is mutable.
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), id, domain.AppointmentStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Appointment status updated successfully!"})
}

// Delete handles DELETE /appointments/:id. Admin only; gating is declared
// at the route.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Appointment deleted successfully!"})
}
