package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academic-calendar-core/internal/model"
	"academic-calendar-core/internal/parse"
	"academic-calendar-core/internal/task"
	repo "academic-calendar-core/internal/task/repository"
	"academic-calendar-core/pkg/dateresolve"
	"academic-calendar-core/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeRepo is an in-memory Repository keeping insertion order.
type fakeRepo struct {
	tasks []model.Task
	next  int
}

func (f *fakeRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	f.next++
	now := time.Now().UTC()
	t := model.Task{
		ID:           "task-" + strconv.Itoa(f.next),
		Title:        opt.Title,
		Description:  opt.Description,
		Courses:      opt.Courses,
		Keywords:     opt.Keywords,
		DueDate:      opt.DueDate,
		Status:       model.TaskStatusPending,
		OriginalText: opt.OriginalText,
		CalendarLink: opt.CalendarLink,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	for _, t := range f.tasks {
		if t.ID == opt.ID {
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (f *fakeRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	var out []model.Task
	for _, t := range f.tasks {
		if opt.Status != "" && string(t.Status) != opt.Status {
			continue
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	for i, t := range f.tasks {
		if t.ID != opt.ID {
			continue
		}
		t.Title = opt.Title
		t.Description = opt.Description
		t.Courses = opt.Courses
		t.Keywords = opt.Keywords
		t.DueDate = opt.DueDate
		t.Status = opt.Status
		t.CalendarLink = opt.CalendarLink
		t.UpdatedAt = time.Now().UTC()
		f.tasks[i] = t
		return t, nil
	}
	return model.Task{}, nil
}

func (f *fakeRepo) DeleteTask(ctx context.Context, id string) error {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeParser returns a canned result for any text.
type fakeParser struct {
	result parse.ParseResult
}

func (f *fakeParser) Resolve(ctx context.Context, input parse.ResolveInput) (parse.ParseResult, error) {
	r := f.result
	r.OriginalText = input.Text
	return r, nil
}

func (f *fakeParser) ResolveBatch(ctx context.Context, input parse.ResolveBatchInput) (parse.ResolveBatchOutput, error) {
	return parse.ResolveBatchOutput{}, nil
}

// fakeCalendar records exports and can be switched to fail. existing is
// what ListEvents reports for any window.
type fakeCalendar struct {
	fail      bool
	existing  []gcalendar.Event
	calls     int
	listCalls int
	lastReq   gcalendar.CreateEventRequest
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.calls++
	f.lastReq = req
	if f.fail {
		return nil, errors.New("calendar unavailable")
	}
	return &gcalendar.Event{HtmlLink: "https://calendar.google.com/event/abc"}, nil
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.listCalls++
	if f.fail {
		return nil, errors.New("calendar unavailable")
	}
	return f.existing, nil
}

func TestCreateFromText(t *testing.T) {
	due := time.Date(2025, time.October, 10, 17, 0, 0, 0, time.UTC)
	parser := &fakeParser{result: parse.ParseResult{
		Courses:        []string{"CS101"},
		Keywords:       []string{"homework", "due"},
		DeadlinePhrase: "due Friday at 5pm",
		ResolvedAt:     &due,
		Strategy:       dateresolve.StrategyNatural,
	}}
	uc := New(&fakeRepo{}, parser, nil, "", "UTC", &mockLogger{})
	ctx := context.Background()

	out, err := uc.Create(ctx, task.CreateTaskInput{Text: "CS101 homework due Friday at 5pm"})
	require.NoError(t, err)
	assert.Equal(t, "CS101 homework due Friday at 5pm", out.Task.Title)
	assert.Equal(t, []string{"CS101"}, out.Task.Courses)
	assert.Equal(t, []string{"homework", "due"}, out.Task.Keywords)
	require.NotNil(t, out.Task.DueDate)
	assert.True(t, out.Task.DueDate.Equal(due))
	assert.Equal(t, model.TaskStatusPending, out.Task.Status)
}

func TestCreateExplicitFieldsWin(t *testing.T) {
	extracted := time.Date(2025, time.October, 10, 17, 0, 0, 0, time.UTC)
	explicit := time.Date(2025, time.December, 1, 9, 0, 0, 0, time.UTC)
	parser := &fakeParser{result: parse.ParseResult{ResolvedAt: &extracted, Strategy: dateresolve.StrategyNatural}}
	uc := New(&fakeRepo{}, parser, nil, "", "UTC", &mockLogger{})

	out, err := uc.Create(context.Background(), task.CreateTaskInput{
		Title:   "my own title",
		Text:    "homework due Friday",
		DueDate: &explicit,
	})
	require.NoError(t, err)
	assert.Equal(t, "my own title", out.Task.Title)
	assert.True(t, out.Task.DueDate.Equal(explicit))
}

func TestCreateEmptyRejected(t *testing.T) {
	uc := New(&fakeRepo{}, &fakeParser{}, nil, "", "UTC", &mockLogger{})
	_, err := uc.Create(context.Background(), task.CreateTaskInput{})
	assert.ErrorIs(t, err, task.ErrEmptyTask)
}

func TestCreateCalendarExport(t *testing.T) {
	due := time.Date(2025, time.October, 10, 17, 0, 0, 0, time.UTC)
	parser := &fakeParser{result: parse.ParseResult{ResolvedAt: &due, Strategy: dateresolve.StrategyNatural}}
	ctx := context.Background()

	t.Run("success attaches link", func(t *testing.T) {
		cal := &fakeCalendar{}
		uc := New(&fakeRepo{}, parser, cal, "primary", "UTC", &mockLogger{})
		out, err := uc.Create(ctx, task.CreateTaskInput{Text: "essay due Friday", ExportToCalendar: true})
		require.NoError(t, err)
		assert.Equal(t, 1, cal.calls)
		assert.Equal(t, "primary", cal.lastReq.CalendarID)
		assert.True(t, cal.lastReq.EndTime.Equal(due))
		assert.Equal(t, "https://calendar.google.com/event/abc", out.Task.CalendarLink)
	})

	t.Run("failure does not fail the create", func(t *testing.T) {
		cal := &fakeCalendar{fail: true}
		uc := New(&fakeRepo{}, parser, cal, "primary", "UTC", &mockLogger{})
		out, err := uc.Create(ctx, task.CreateTaskInput{Text: "essay due Friday", ExportToCalendar: true})
		require.NoError(t, err)
		assert.Empty(t, out.Task.CalendarLink)
	})

	t.Run("occupied window still exports", func(t *testing.T) {
		cal := &fakeCalendar{existing: []gcalendar.Event{
			{ID: "ev-1", Summary: "lecture"},
		}}
		uc := New(&fakeRepo{}, parser, cal, "primary", "UTC", &mockLogger{})
		out, err := uc.Create(ctx, task.CreateTaskInput{Text: "essay due Friday", ExportToCalendar: true})
		require.NoError(t, err)
		assert.Equal(t, 1, cal.listCalls)
		assert.Equal(t, 1, cal.calls)
		assert.Equal(t, "https://calendar.google.com/event/abc", out.Task.CalendarLink)
	})

	t.Run("no due date skips export", func(t *testing.T) {
		cal := &fakeCalendar{}
		uc := New(&fakeRepo{}, &fakeParser{}, cal, "primary", "UTC", &mockLogger{})
		_, err := uc.Create(ctx, task.CreateTaskInput{Text: "someday maybe", ExportToCalendar: true})
		require.NoError(t, err)
		assert.Zero(t, cal.calls)
	})
}

func TestListValidatesStatus(t *testing.T) {
	uc := New(&fakeRepo{}, &fakeParser{}, nil, "", "UTC", &mockLogger{})
	_, err := uc.List(context.Background(), task.ListTasksInput{Status: "archived"})
	assert.ErrorIs(t, err, task.ErrInvalidStatus)
}

func TestDetailUpdateDelete(t *testing.T) {
	uc := New(&fakeRepo{}, &fakeParser{}, nil, "", "UTC", &mockLogger{})
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateTaskInput{Title: "essay draft", Description: "first pass"})
	require.NoError(t, err)
	id := created.Task.ID

	t.Run("Detail", func(t *testing.T) {
		out, err := uc.Detail(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "essay draft", out.Task.Title)
	})

	t.Run("Detail not found", func(t *testing.T) {
		_, err := uc.Detail(ctx, "missing")
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})

	t.Run("Update is partial", func(t *testing.T) {
		out, err := uc.Update(ctx, task.UpdateTaskInput{ID: id, Title: "essay final"})
		require.NoError(t, err)
		assert.Equal(t, "essay final", out.Task.Title)
		assert.Equal(t, "first pass", out.Task.Description)
	})

	t.Run("Update rejects bad status", func(t *testing.T) {
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: id, Status: "paused"})
		assert.ErrorIs(t, err, task.ErrInvalidStatus)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, uc.Delete(ctx, id))
		_, err := uc.Detail(ctx, id)
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})

	t.Run("Delete not found", func(t *testing.T) {
		assert.ErrorIs(t, uc.Delete(ctx, "missing"), task.ErrTaskNotFound)
	})
}

func TestComplete(t *testing.T) {
	uc := New(&fakeRepo{}, &fakeParser{}, nil, "", "UTC", &mockLogger{})
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateTaskInput{Title: "submit report"})
	require.NoError(t, err)

	out, err := uc.Complete(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, out.Task.Status)

	// Idempotent.
	again, err := uc.Complete(ctx, created.Task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, again.Task.Status)

	_, err = uc.Complete(ctx, "missing")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}
