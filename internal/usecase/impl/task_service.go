package impl

import (
	"context"
	"log/slog"
	"time"

	"taskhub/config"
	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo        repository.TaskRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
	now             func() time.Time
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	pagination := params.Config.Pagination
	if pagination == nil {
		pagination = &config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 100}
	}

	return &taskService{
		taskRepo:        params.TaskRepo,
		defaultPageSize: pagination.DefaultPageSize,
		maxPageSize:     pagination.MaxPageSize,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTask persists a new task for the owner. Omitted status and priority
// fall back to todo/medium.
func (srv *taskService) CreateTask(ctx context.Context, ownerID int64, input *usecase.CreateTaskInput) (*entity.Task, error) {
	status := entity.TaskStatus(input.Status)
	if input.Status == "" {
		status = entity.TaskStatusTodo
	}
	priority := entity.TaskPriority(input.Priority)
	if input.Priority == "" {
		priority = entity.TaskPriorityMedium
	}
	if !status.IsValid() || !priority.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid task status or priority")
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		OwnerID:     ownerID,
	}

	// A task created as done is complete from the start.
	if status == entity.TaskStatusDone {
		now := srv.now()
		task.CompletedAt = &now
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Debug("Task created", slog.Int64("ownerID", ownerID), slog.Int64("taskID", task.ID))

	return task, nil
}

// GetTask retrieves a single task owned by ownerID.
func (srv *taskService) GetTask(ctx context.Context, ownerID, taskID int64) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task not found")
		}

		return nil, errors.Wrap(err, "failed to load task")
	}

	return task, nil
}

// ListTasks returns the owner's tasks, newest first, with pagination and an
// optional status filter. Out-of-range paging values are clamped.
func (srv *taskService) ListTasks(ctx context.Context, ownerID int64, input *usecase.ListTasksInput) ([]*entity.Task, error) {
	filter := repository.TaskFilter{
		Status: input.Status,
		Skip:   input.Skip,
		Limit:  input.Limit,
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = srv.defaultPageSize
	}
	if filter.Limit > srv.maxPageSize {
		filter.Limit = srv.maxPageSize
	}

	tasks, err := srv.taskRepo.FindByOwner(ctx, ownerID, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// UpdateTask applies the provided changes to a task owned by ownerID.
// CompletedAt tracks the status: set on the transition into done, cleared
// on the transition out of it.
func (srv *taskService) UpdateTask(ctx context.Context, ownerID, taskID int64, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task not found")
		}

		return nil, errors.Wrap(err, "failed to load task for update")
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		priority := entity.TaskPriority(*input.Priority)
		if !priority.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid task priority")
		}
		task.Priority = priority
	}
	if input.DueDate.Set {
		// An explicit null clears the date; the field absent leaves it alone.
		task.DueDate = input.DueDate.Time
	}
	if input.Status != nil {
		status := entity.TaskStatus(*input.Status)
		if !status.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid task status")
		}

		if status == entity.TaskStatusDone && task.Status != entity.TaskStatusDone {
			now := srv.now()
			task.CompletedAt = &now
		} else if status != entity.TaskStatusDone {
			task.CompletedAt = nil
		}
		task.Status = status
	}

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to update task", slog.Int64("ownerID", ownerID), slog.Int64("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update task")
	}

	srv.log(ctx).Debug("Task updated", slog.Int64("ownerID", ownerID), slog.Int64("taskID", taskID))

	return task, nil
}

// DeleteTask removes a task owned by ownerID.
func (srv *taskService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if err := srv.taskRepo.Delete(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(domainerrors.ErrTaskNotFound, "task not found")
		}

		return errors.Wrap(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.Int64("ownerID", ownerID), slog.Int64("taskID", taskID))

	return nil
}

// GetStats aggregates the owner's tasks by status, zero-filling statuses
// with no tasks.
func (srv *taskService) GetStats(ctx context.Context, ownerID int64) (*usecase.TaskStatsOutput, error) {
	stats, err := srv.taskRepo.CountByStatus(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate task stats", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to aggregate task stats")
	}

	return &usecase.TaskStatsOutput{
		TotalTasks: stats.Total,
		ByStatus:   stats.ByStatus,
	}, nil
}
