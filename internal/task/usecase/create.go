package usecase

import (
	"context"
	"time"

	"academic-calendar-core/internal/parse"
	"academic-calendar-core/internal/task"
	repo "academic-calendar-core/internal/task/repository"
	"academic-calendar-core/pkg/gcalendar"
)

// Create stores a new task. When input.Text is set the text is parsed
// first: extracted courses, keywords and the resolved deadline enrich
// the task, with explicit input fields taking precedence.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if input.Title == "" && input.Text == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTask
	}

	opt := repo.CreateTaskOptions{
		Title:        input.Title,
		Description:  input.Description,
		DueDate:      input.DueDate,
		OriginalText: input.Text,
	}

	if input.Text != "" {
		result, err := uc.parser.Resolve(ctx, parse.ResolveInput{Text: input.Text, Now: time.Now()})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create Resolve: %v", err)
			return task.CreateTaskOutput{}, err
		}
		opt.Courses = result.Courses
		opt.Keywords = result.Keywords
		if opt.DueDate == nil {
			opt.DueDate = result.ResolvedAt
		}
		if opt.Title == "" {
			opt.Title = input.Text
		}
	}

	if input.ExportToCalendar {
		opt.CalendarLink = uc.exportEvent(ctx, opt.Title, opt.Description, opt.DueDate)
	}

	created, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}
	return task.CreateTaskOutput{Task: created}, nil
}

// exportEvent creates a one-hour calendar event ending at the due date.
// Export failure is logged and swallowed: the task is stored either way.
// An occupied window is only reported, never a reason to skip.
func (uc *implUseCase) exportEvent(ctx context.Context, title, description string, due *time.Time) string {
	if uc.calendar == nil || due == nil {
		return ""
	}
	start := due.Add(-time.Hour)

	if existing, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    start,
		TimeMax:    *due,
	}); err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar lookup: %v", err)
	} else if len(existing) > 0 {
		uc.l.Infof(ctx, "Due date window overlaps %d existing calendar events", len(existing))
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     title,
		Description: description,
		StartTime:   start,
		EndTime:     *due,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar export: %v", err)
		return ""
	}
	return event.HtmlLink
}
