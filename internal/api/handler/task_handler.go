package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobgenix/crm-system/internal/api/metrics"
	"github.com/jobgenix/crm-system/internal/core/domain"
	"github.com/jobgenix/crm-system/internal/core/ports"
)

// TaskHandler handles HTTP requests for the task table.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /v1/tasks. With a non-empty "search" query parameter the
// result is filtered by employee name, case-insensitive substring match.
//
// @Summary      List or search tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Employee name substring"
// @Success      200     {object}  taskListResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	var (
		tasks []*domain.Task
		err   error
	)
	if search := c.QueryParam("search"); search != "" {
		tasks, err = h.service.SearchTasks(c.Request().Context(), search)
	} else {
		tasks, err = h.service.ListTasks(c.Request().Context())
	}
	if err != nil {
		return err
	}

	items := make([]taskListItem, 0, len(tasks))
	for i, t := range tasks {
		items = append(items, taskListItem{Index: i, Task: t})
	}
	return c.JSON(http.StatusOK, taskListResponse{Data: items, Count: len(items)})
}

// Add handles POST /v1/tasks (admin).
//
// @Summary      Add a task (admin)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/tasks [post]
func (h *TaskHandler) Add(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req addTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.AddTask(c.Request().Context(), ports.AddTaskInput{
		Actor:        actor,
		Name:         req.Task,
		Priority:     req.Priority,
		EmployeeName: req.EmployeeName,
		EmployeeRole: req.EmployeeRole,
		Status:       req.Status,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(task.Priority).Inc()
	return c.JSON(http.StatusCreated, task)
}

// UpdateStatus handles PUT /v1/tasks/:selector/status (employee). The
// selector is a task id or a 0-based row index.
//
// @Summary      Update a task's status (employee)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        selector  path      string                   true  "Task id or row index"
// @Param        body      body      updateTaskStatusRequest  true  "New status"
// @Success      200       {object}  domain.Task
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/tasks/{selector}/status [put]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.UpdateTaskStatus(c.Request().Context(), ports.UpdateTaskStatusInput{
		Actor:     actor,
		Selector:  c.Param("selector"),
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /v1/tasks/:selector (admin).
//
// @Summary      Delete one task (admin)
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        selector  path      string  true  "Task id or row index"
// @Success      200       {object}  messageResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /v1/tasks/{selector} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteTask(c.Request().Context(), actor, c.Param("selector")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "task deleted"})
}

// DeleteAll handles DELETE /v1/tasks (admin). The table is emptied; its
// schema header survives.
//
// @Summary      Delete all tasks (admin)
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/tasks [delete]
func (h *TaskHandler) DeleteAll(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteAllTasks(c.Request().Context(), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "all tasks deleted"})
}
