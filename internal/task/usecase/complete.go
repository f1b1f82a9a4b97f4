package usecase

import (
	"context"

	"academic-calendar-core/internal/model"
	"academic-calendar-core/internal/task"
	repo "academic-calendar-core/internal/task/repository"
)

// Complete marks a Task as completed. Completing an already completed
// task is a no-op, not an error.
func (uc *implUseCase) Complete(ctx context.Context, id string) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}
	if existing.Status == model.TaskStatusCompleted {
		return task.UpdateTaskOutput{Task: existing}, nil
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           existing.ID,
		Title:        existing.Title,
		Description:  existing.Description,
		Courses:      existing.Courses,
		Keywords:     existing.Keywords,
		DueDate:      existing.DueDate,
		Status:       model.TaskStatusCompleted,
		CalendarLink: existing.CalendarLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}
