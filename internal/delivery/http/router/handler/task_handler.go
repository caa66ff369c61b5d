package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/response"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateTask handles the task creation request.
func (h *TaskHandler) CreateTask(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	input := new(usecase.CreateTaskInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.CreateTask(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTaskResponse(task), "Task created successfully")
}

// GetTask returns a single task owned by the caller.
func (h *TaskHandler) GetTask(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.GetTask(c.Request().Context(), user.ID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "")
}

// ListTasks returns the caller's tasks, newest first. Supports skip/limit
// pagination and an optional status filter.
func (h *TaskHandler) ListTasks(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	input := &usecase.ListTasksInput{}
	if raw := c.QueryParam("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("skip must be a non-negative integer"))
		}
		input.Skip = skip
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must be a positive integer"))
		}
		input.Limit = limit
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.TaskStatus(raw)
		if !status.IsValid() {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("status must be one of todo, in_progress, done"))
		}
		input.Status = &status
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponses(tasks), "")
}

// UpdateTask applies partial changes to a task owned by the caller.
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateTaskInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), user.ID, taskID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task), "Task updated successfully")
}

// DeleteTask removes a task owned by the caller.
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteTask(c.Request().Context(), user.ID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// GetStats returns the caller's task counts grouped by status.
func (h *TaskHandler) GetStats(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	stats, err := h.uc.GetStats(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[status.String()] = count
	}

	return response.Success(c, http.StatusOK, &TaskStatsResponse{
		TotalTasks: stats.TotalTasks,
		ByStatus:   byStatus,
	}, "")
}

// parseTaskID reads the :id route parameter. A non-numeric ID cannot name
// any task, so it reports the same not-found as a missing one.
func parseTaskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.ErrTaskNotFound
	}

	return id, nil
}
