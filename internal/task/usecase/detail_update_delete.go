package usecase

import (
	"context"

	"academic-calendar-core/internal/model"
	"academic-calendar-core/internal/task"
	repo "academic-calendar-core/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: existing}, nil
}

// Update modifies an existing Task. Empty fields keep their stored
// value (partial update). Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	if input.Status != "" && !validStatus(input.Status) {
		return task.UpdateTaskOutput{}, task.ErrInvalidStatus
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	status := existing.Status
	if input.Status != "" {
		status = model.TaskStatus(input.Status)
	}
	dueDate := existing.DueDate
	if input.DueDate != nil {
		dueDate = input.DueDate
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           input.ID,
		Title:        coalesce(input.Title, existing.Title),
		Description:  coalesce(input.Description, existing.Description),
		Courses:      existing.Courses,
		Keywords:     existing.Keywords,
		DueDate:      dueDate,
		Status:       status,
		CalendarLink: existing.CalendarLink,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
