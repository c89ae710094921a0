package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicalcanvas/practice-api/internal/api/metrics"
	"github.com/clinicalcanvas/practice-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the schedule.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List handles GET /api/appointments. Each row carries the client display
// name so the calendar can render without extra lookups.
//
// @Summary      List the caller's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.AppointmentWithClient
// @Failure      401  {object}  errorResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	appointments, err := h.service.List(c.Request().Context(), therapistID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// Create handles POST /api/appointments.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appointmentRequest  true  "Appointment fields"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	var req appointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	appointment, err := h.service.Create(c.Request().Context(), therapistID, req.toInput())
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("appointment").Inc()
	return c.JSON(http.StatusCreated, appointment)
}

// Update handles PUT /api/appointments/:id.
//
// @Summary      Replace an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Appointment id"
// @Param        body  body      appointmentRequest  true  "Appointment fields"
// @Success      200   {object}  domain.Appointment
// @Failure      404   {object}  errorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	var req appointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	appointment, err := h.service.Update(c.Request().Context(), therapistID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointment)
}

// Delete handles DELETE /api/appointments/:id.
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	therapistID, err := ctxTherapistID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), therapistID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletedResponse{Message: "appointment deleted"})
}
