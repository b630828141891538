package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agendly/booking-system/internal/core/ports"
)

const scheduleDateLayout = "2006-01-02"

// ScheduleHandler serves the provider's daily agenda.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Daily returns the caller's appointments for one day, ascending by time.
//
// @Summary      Provider daily schedule
// @Tags         schedule
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  true  "Day to list, YYYY-MM-DD"
// @Success      200   {object}  scheduleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /schedule [get]
func (h *ScheduleHandler) Daily(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	raw := c.QueryParam("date")
	day, err := time.Parse(scheduleDateLayout, raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}

	appts, err := h.service.DailySchedule(c.Request().Context(), userID, day)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	items := make([]appointmentResponse, 0, len(appts))
	for _, a := range appts {
		items = append(items, toAppointmentResponse(a, now))
	}

	return c.JSON(http.StatusOK, scheduleResponse{
		Date: day.Format(scheduleDateLayout),
		Data: items,
	})
}
