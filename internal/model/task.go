package model

import "time"

// TaskStatus is the lifecycle state of a stored task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// Task is a stored academic task, usually created from a parsed text.
type Task struct {
	ID           string
	Title        string
	Description  string
	Courses      []string   // course codes extracted from OriginalText
	Keywords     []string   // academic keywords extracted from OriginalText
	DueDate      *time.Time // resolved deadline, nil when none was found
	Status       TaskStatus
	OriginalText string // raw text the task was created from, may be empty
	CalendarLink string // Google Calendar event link, may be empty
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
