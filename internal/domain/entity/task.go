// Package entity contains the core business objects of the project.
package entity

import "time"

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	// TaskStatusTodo indicates a task that has not been started.
	TaskStatusTodo TaskStatus = "todo"
	// TaskStatusInProgress indicates a task currently being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"
	// TaskStatusDone indicates a completed task.
	TaskStatusDone TaskStatus = "done"
)

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the TaskStatus is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// AllTaskStatuses returns every valid status, in workflow order.
// Used to zero-fill statistics buckets.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
}

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	// TaskPriorityLow indicates a low-urgency task.
	TaskPriorityLow TaskPriority = "low"
	// TaskPriorityMedium indicates a normal-urgency task.
	TaskPriorityMedium TaskPriority = "medium"
	// TaskPriorityHigh indicates a high-urgency task.
	TaskPriorityHigh TaskPriority = "high"
)

// String returns the string representation of the TaskPriority.
func (p TaskPriority) String() string {
	return string(p)
}

// IsValid checks if the TaskPriority is a valid value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	ID          int64        // Auto-incremented numeric identifier.
	Title       string       // Short summary, 1-200 chars.
	Description string       // Optional free-form detail.
	Status      TaskStatus   // Workflow state, defaults to todo.
	Priority    TaskPriority // Urgency, defaults to medium.
	DueDate     *time.Time   // Optional deadline.
	CompletedAt *time.Time   // Set when Status transitions to done, cleared when it leaves done.
	OwnerID     int64        // Owning user. Tasks are only ever visible to their owner.
	CreatedAt   time.Time    // Timestamp of task creation.
	UpdatedAt   time.Time    // Timestamp of the last modification.
}
