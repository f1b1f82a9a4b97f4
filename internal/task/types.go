package task

import (
	"time"

	"academic-calendar-core/internal/model"
)

// --- UseCase Inputs ---

// CreateTaskInput creates a task either from explicit fields or from a
// raw text. When Text is set, courses, keywords and the due date are
// extracted from it; explicit fields win over extracted ones.
type CreateTaskInput struct {
	Title       string
	Description string
	Text        string
	DueDate     *time.Time
	// ExportToCalendar requests a Google Calendar event for the task.
	// Export failure never fails the create.
	ExportToCalendar bool
}

type ListTasksInput struct {
	Status string
	Limit  int
	Offset int
}

type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	DueDate     *time.Time
	Status      string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}
