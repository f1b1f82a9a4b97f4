package repository

import (
	"time"

	"academic-calendar-core/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title        string
	Description  string
	Courses      []string
	Keywords     []string
	DueDate      *time.Time
	OriginalText string
	CalendarLink string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	Status  string
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// Every field is written as given; the use case resolves partial
// updates against the stored row before calling this.
type UpdateTaskOptions struct {
	ID           string
	Title        string
	Description  string
	Courses      []string
	Keywords     []string
	DueDate      *time.Time
	Status       model.TaskStatus
	CalendarLink string
}
