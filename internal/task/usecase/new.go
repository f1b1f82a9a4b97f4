package usecase

import (
	"context"

	"academic-calendar-core/internal/parse"
	"academic-calendar-core/internal/task/repository"
	"academic-calendar-core/pkg/gcalendar"
	"academic-calendar-core/pkg/log"
)

// CalendarExporter creates calendar events for tasks with deadlines and
// reports what already occupies a time window. Satisfied by
// *gcalendar.Client; a nil exporter disables export.
type CalendarExporter interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo       repository.Repository
	parser     parse.UseCase
	calendar   CalendarExporter
	calendarID string
	timezone   string
	l          log.Logger
}

// New creates a new task UseCase implementation. calendarID is the target
// calendar for exports; empty selects the client's default.
func New(repo repository.Repository, parser parse.UseCase, calendar CalendarExporter, calendarID, timezone string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		parser:     parser,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		l:          l,
	}
}
