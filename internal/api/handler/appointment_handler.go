package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agendly/booking-system/internal/core/ports"
)

const pageSize = 20

// AppointmentHandler handles booking, listing and cancellation.
type AppointmentHandler struct {
	service ports.BookingService
}

func NewAppointmentHandler(service ports.BookingService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// List returns one page of the caller's active appointments.
//
// @Summary      List own appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "1-based page number (20 per page)"
// @Success      200   {object}  listAppointmentsResponse
// @Failure      401   {object}  errorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			page = p
		}
	}

	result, err := h.service.List(c.Request().Context(), userID, page)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result, pageSize))
}

// Create books a provider's hour-slot for the caller.
//
// @Summary      Book an appointment with a provider
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Provider and requested time"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Create(c.Request().Context(), userID, req.ProviderID, req.Date)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAppointmentResponse(appt, time.Now().UTC()))
}

// Cancel marks the caller's appointment as canceled.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	appt, err := h.service.Cancel(c.Request().Context(), uint(id), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(appt, time.Now().UTC()))
}
