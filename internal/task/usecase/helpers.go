package usecase

import "academic-calendar-core/internal/model"

// coalesce returns the first non-empty string — used for partial updates.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func validStatus(s string) bool {
	switch model.TaskStatus(s) {
	case model.TaskStatusPending, model.TaskStatusCompleted, model.TaskStatusCancelled:
		return true
	}
	return false
}
