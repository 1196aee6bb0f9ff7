package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

type RecordHandler struct {
	service ports.RecordService
}

func NewRecordHandler(service ports.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

type createRecordRequest struct {
	PatientID    int    `json:"patient_id"   validate:"required,gt=0"`
	DoctorID     int    `json:"doctor_id"    validate:"required,gt=0"`
	Diagnosis    string `json:"diagnosis"    validate:"required"`
	Prescription string `json:"prescription" validate:"required"`
}

type updateRecordRequest struct {
	Diagnosis    string `json:"diagnosis"    validate:"required"`
	Prescription string `json:"prescription" validate:"required"`
}

// List handles GET /medical-records.
func (h *RecordHandler) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Create handles POST /medical-records.
func (h *RecordHandler) Create(c echo.Context) error {
	var req createRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), &domain.MedicalRecord{
		PatientID:    req.PatientID,
		DoctorID:     req.DoctorID,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":   "Medical record added successfully!",
		"record_id": id,
	})
}

// Update handles PUT /medical-records/:id. Only diagnosis and prescription
// are mutable.
func (h *RecordHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRecordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), id, req.Diagnosis, req.Prescription); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Medical record updated successfully!"})
}

// Delete handles DELETE /medical-records/:id.
func (h *RecordHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Medical record deleted successfully!"})
}
