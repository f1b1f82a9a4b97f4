package usecase

import (
	"context"

	"academic-calendar-core/internal/task"
	repo "academic-calendar-core/internal/task/repository"
)

// List returns a paginated list of Tasks, nearest deadline first.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if input.Status != "" && !validStatus(input.Status) {
		return task.ListTasksOutput{}, task.ErrInvalidStatus
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
