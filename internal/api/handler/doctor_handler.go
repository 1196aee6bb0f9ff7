package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthealthcare/clinic-api/internal/core/domain"
	"github.com/smarthealthcare/clinic-api/internal/core/ports"
)

type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

type doctorRequest struct {
	Name           string `json:"name"           validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Email          string `json:"email"          validate:"required,email"`
	Phone          string `json:"phone"          validate:"required"`
}

func (r *doctorRequest) toDomain() *domain.Doctor {
	return &domain.Doctor{
		Name:           r.Name,
		Specialization: r.Specialization,
		Email:          r.Email,
		Phone:          r.Phone,
	}
}

// List handles GET /doctors.
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Search handles GET /doctors/search with optional name/specialization
// query parameters matched as substrings.
func (h *DoctorHandler) Search(c echo.Context) error {
	doctors, err := h.service.Search(c.Request().Context(), ports.DoctorFilter{
		Name:           c.QueryParam("name"),
		Specialization: c.QueryParam("specialization"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Create handles POST /doctors. Admin only; gating is declared at the route.
//
// @Summary      Add a new doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      doctorRequest  true  "Doctor details"
// @Success      201   {object}  map[string]any
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	var req doctorRequest
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
		"message":   "Doctor added successfully!",
		"doctor_id": id,
	})
}

// Update handles PUT /doctors/:id.
func (h *DoctorHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req doctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), id, req.toDomain()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Doctor updated successfully!"})
}

// Delete handles DELETE /doctors/:id.
func (h *DoctorHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Doctor deleted successfully!"})
}
