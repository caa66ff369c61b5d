package usecase

import (
	"context"
	"encoding/json"
	"time"

	"taskhub/internal/domain/entity"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

// OptionalTime distinguishes an absent JSON field from an explicit null.
// Set reports whether the field appeared in the request at all; a null
// value leaves Time nil, clearing the stored timestamp.
type OptionalTime struct {
	Set  bool
	Time *time.Time
}

// UnmarshalJSON runs only when the field is present in the payload, so
// Set marks presence and Time carries the value (nil for null).
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true

	return json.Unmarshal(data, &o.Time)
}

// UpdateTaskInput defines the mutable task fields. Nil pointers leave the
// corresponding field unchanged; due_date additionally accepts an explicit
// null to clear the date.
type UpdateTaskInput struct {
	Title       *string      `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description"`
	Status      *string      `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	Priority    *string      `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     OptionalTime `json:"due_date"`
}

// ListTasksInput defines pagination and filtering for task listings.
// Limits outside the configured bounds are clamped, not rejected.
type ListTasksInput struct {
	Skip   int
	Limit  int
	Status *entity.TaskStatus
}

// TaskStatsOutput aggregates the caller's tasks by status.
type TaskStatsOutput struct {
	TotalTasks int64
	ByStatus   map[entity.TaskStatus]int64
}

// TaskUsecase defines the interface for task business operations. Every
// operation is scoped to the authenticated owner.
type TaskUsecase interface {
	CreateTask(ctx context.Context, ownerID int64, input *CreateTaskInput) (*entity.Task, error)
	GetTask(ctx context.Context, ownerID, taskID int64) (*entity.Task, error)
	ListTasks(ctx context.Context, ownerID int64, input *ListTasksInput) ([]*entity.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID int64, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) error
	GetStats(ctx context.Context, ownerID int64) (*TaskStatsOutput, error)
}
