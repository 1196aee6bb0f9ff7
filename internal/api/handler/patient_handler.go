package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

type patientRequest struct {
	Name        string `json:"name"          validate:"required"`
	Email       string `json:"email"         validate:"required,email"`
	Phone       string `json:"phone"         validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Gender      string `json:"gender"        validate:"required"`
	Address     string `json:"address"       validate:"required"`
}

func (r *patientRequest) toDomain() *domain.Patient {
	return &domain.Patient{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
		Gender:      r.Gender,
		Address:     r.Address,
	}
}

// List handles GET /patients.
//
// @Summary      List all patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Patient
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// Search handles GET /patients/search with optional name/email/phone query
// parameters matched as substrings.
//
// @Summary      Search patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        name   query     string  false  "Name substring"
// @Param        email  query     string  false  "Email substring"
// @Param        phone  query     string  false  "Phone substring"
// @Success      200    {array}   domain.Patient
// @Router       /patients/search [get]
func (h *PatientHandler) Search(c echo.Context) error {
	patients, err := h.service.Search(c.Request().Context(), ports.PatientFilter{
		Name:  c.QueryParam("name"),
		Email: c.QueryParam("email"),
		Phone: c.QueryParam("phone"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

// Create handles POST /patients.
//
// @Summary      Add a new patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Router       /patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":    "Patient added successfully!",
		"patient_id": id,
	})
}

// Update handles PUT /patients/:id. All fields are required, matching the
// whole-row update semantics of the store.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Patient ID"
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  errorResponse
// @Router       /patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), id, req.toDomain()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient updated successfully!"})
}

// Delete handles DELETE /patients/:id.
//
// @Summary      Delete a patient
// @Tags         patients
// @Produce      json
// @Param        id  path      int  true  "Patient ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient deleted successfully!"})
}

// pathID parses the :id path parameter shared by all entity routes.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
