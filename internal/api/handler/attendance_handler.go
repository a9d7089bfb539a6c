package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobgenix/crm-system/internal/api/metrics"
	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// AttendanceHandler handles HTTP requests for check-in/check-out.
type AttendanceHandler struct {
	service ports.AttendanceService
}

func NewAttendanceHandler(service ports.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// CheckIn handles POST /v1/attendance/check-in.
//
// @Summary      Check in for today
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  domain.AttendanceRecord
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	rec, err := h.service.CheckIn(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	metrics.AttendanceTotal.WithLabelValues("check_in").Inc()
	return c.JSON(http.StatusCreated, rec)
}

// CheckOut handles POST /v1/attendance/check-out.
//
// @Summary      Check out for today
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AttendanceRecord
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	rec, err := h.service.CheckOut(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	metrics.AttendanceTotal.WithLabelValues("check_out").Inc()
	return c.JSON(http.StatusOK, rec)
}

// Filter handles GET /v1/attendance?username=&from=&to= with dates in
// YYYY-MM-DD. Employees are always scoped to themselves.
//
// @Summary      List attendance records
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        username  query     string  false  "Username (admin only)"
// @Param        from      query     string  false  "Start date (YYYY-MM-DD)"
// @Param        to        query     string  false  "End date (YYYY-MM-DD)"
// @Success      200       {array}   domain.AttendanceRecord
// @Failure      400       {object}  errorResponse
// @Router       /v1/attendance [get]
func (h *AttendanceHandler) Filter(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	filter := ports.AttendanceFilter{Username: c.QueryParam("username")}
	if filter.From, err = parseDateParam(c.QueryParam("from")); err != nil {
		return err
	}
	if filter.To, err = parseDateParam(c.QueryParam("to")); err != nil {
		return err
	}

	records, err := h.service.Filter(c.Request().Context(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(domain.DateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw))
	}
	return t, nil
}
