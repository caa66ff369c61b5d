package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found
// or is not visible to the requesting owner.
var ErrTaskNotFound = errors.New("task not found")

// TaskFilter narrows a task listing. The zero value matches everything.
type TaskFilter struct {
	Status *entity.TaskStatus // Optional status filter.
	Skip   int                // Records to skip, for pagination.
	Limit  int                // Maximum records to return.
}

// TaskStats aggregates a user's tasks by status.
type TaskStats struct {
	Total    int64
	ByStatus map[entity.TaskStatus]int64
}

// TaskRepository defines the standard operations for task persistence.
// Every operation is scoped to an owner; tasks are never visible across users.
type TaskRepository interface {
	// FindByID retrieves a single task owned by ownerID.
	FindByID(ctx context.Context, ownerID, id int64) (*entity.Task, error)

	// FindByOwner lists tasks owned by ownerID, newest first, applying the filter.
	FindByOwner(ctx context.Context, ownerID int64, filter TaskFilter) ([]*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// Update modifies an existing task entity in the storage.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task owned by ownerID.
	Delete(ctx context.Context, ownerID, id int64) error

	// CountByStatus aggregates the owner's tasks by status.
	CountByStatus(ctx context.Context, ownerID int64) (*TaskStats, error)
}
