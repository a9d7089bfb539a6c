package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobgenix/crm-system/internal/api/metrics"
	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

type applyLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
}

type decideLeaveRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accept reject"`
}

// LeaveHandler handles HTTP requests for leave applications.
type LeaveHandler struct {
	service ports.LeaveService
}

func NewLeaveHandler(service ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

// Apply handles POST /v1/leaves (employee). The stored status is always
// Pending.
//
// @Summary      Apply for leave (employee)
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyLeaveRequest  true  "Leave details"
// @Success      201   {object}  domain.LeaveApplication
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/leaves [post]
func (h *LeaveHandler) Apply(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req applyLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	leave, err := h.service.Apply(c.Request().Context(), ports.ApplyLeaveInput{
		Actor:     actor,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, leave)
}

// Decide handles PUT /v1/leaves/:selector/decision (admin). The employee is
// notified best-effort; a failed email never undoes the decision.
//
// @Summary      Accept or reject a leave application (admin)
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        selector  path      string              true  "Leave id or row index"
// @Param        body      body      decideLeaveRequest  true  "Decision: accept or reject"
// @Success      200       {object}  domain.LeaveApplication
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/leaves/{selector}/decision [put]
func (h *LeaveHandler) Decide(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req decideLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	leave, err := h.service.Decide(c.Request().Context(), ports.DecideLeaveInput{
		Actor:    actor,
		Selector: c.Param("selector"),
		Accept:   req.Decision == "accept",
	})
	if err != nil {
		return err
	}

	metrics.LeaveDecisionsTotal.WithLabelValues(string(leave.Status)).Inc()
	return c.JSON(http.StatusOK, leave)
}

// List handles GET /v1/leaves. Admins see every application; employees see
// their own, whatever the status.
//
// @Summary      List leave applications
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.LeaveApplication
// @Failure      401  {object}  errorResponse
// @Router       /v1/leaves [get]
func (h *LeaveHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var leaves []*domain.LeaveApplication
	if actor.Role == domain.RoleAdmin {
		leaves, err = h.service.ListAll(c.Request().Context(), actor)
	} else {
		leaves, err = h.service.StatusFor(c.Request().Context(), actor.Username)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leaves)
}
