package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

type auditEventResponse struct {
	Username  string `json:"username"`
	Action    string `json:"action"`
	Timestamp string `json:"timestamp"`
}

// AuditHandler exposes the login/logout log to admins. Timestamps are
// rendered with the operator-configured display format; storage and
// filtering are untouched by it.
type AuditHandler struct {
	service    ports.AuditService
	timeFormat string
}

func NewAuditHandler(service ports.AuditService, timeFormat string) *AuditHandler {
	if timeFormat == "" {
		timeFormat = "2006-01-02 15:04:05"
	}
	return &AuditHandler{service: service, timeFormat: timeFormat}
}

// Filter handles GET /v1/audit?username=&from=&to= with dates in YYYY-MM-DD.
// The "to" day is inclusive.
//
// @Summary      Filter login/logout events (admin)
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        username  query     string  false  "Username"
// @Param        from      query     string  false  "Start date (YYYY-MM-DD)"
// @Param        to        query     string  false  "End date (YYYY-MM-DD), inclusive"
// @Success      200       {array}   auditEventResponse
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Router       /v1/audit [get]
func (h *AuditHandler) Filter(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	filter := ports.AuditFilter{Username: c.QueryParam("username")}
	if filter.From, err = parseDateParam(c.QueryParam("from")); err != nil {
		return err
	}
	if filter.To, err = parseDateParam(c.QueryParam("to")); err != nil {
		return err
	}
	if !filter.To.IsZero() {
		filter.To = filter.To.Add(24*time.Hour - time.Second)
	}

	events, err := h.service.Filter(c.Request().Context(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.render(events))
}

// Today handles GET /v1/audit/today.
//
// @Summary      Today's login/logout events (admin)
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   auditEventResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/audit/today [get]
func (h *AuditHandler) Today(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	events, err := h.service.Today(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.render(events))
}

// Clear handles DELETE /v1/audit.
//
// @Summary      Delete all login/logout events (admin)
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/audit [delete]
func (h *AuditHandler) Clear(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Clear(c.Request().Context(), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "login/logout log cleared"})
}

func (h *AuditHandler) render(events []*domain.AuditEvent) []auditEventResponse {
	out := make([]auditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, auditEventResponse{
			Username:  e.Username,
			Action:    e.Action,
			Timestamp: e.Timestamp.Format(h.timeFormat),
		})
	}
	return out
}
