package sqlite

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"academic-calendar-core/internal/model"
	repo "academic-calendar-core/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildCountQuery builds WHERE clause + args for counting Tasks (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Nearest deadline first; tasks with no deadline sort last.
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "due_date IS NULL, due_date ASC"
	}
	parts = append(parts, "ORDER BY "+orderBy)

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTask reads one row in taskColumns order into a model.Task.
func scanTask(s scanner) (model.Task, error) {
	var (
		task     model.Task
		courses  string
		keywords string
		dueDate  sql.NullTime
		status   string
	)
	err := s.Scan(
		&task.ID, &task.Title, &task.Description,
		&courses, &keywords, &dueDate, &status,
		&task.OriginalText, &task.CalendarLink,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Courses = decodeList(courses)
	task.Keywords = decodeList(keywords)
	task.Status = model.TaskStatus(status)
	if dueDate.Valid {
		t := dueDate.Time
		task.DueDate = &t
	}
	return task, nil
}

// encodeList stores a string slice as a JSON text column. SQLite has
// no array type; JSON keeps the column readable and queryable.
func encodeList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeList(raw string) []string {
	if raw == "" || raw == "[]" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
