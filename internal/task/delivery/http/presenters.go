package http

import (
	"time"

	"academic-calendar-core/internal/model"
	"academic-calendar-core/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title            string `json:"title"       binding:"omitempty,max=255"`
	Description      string `json:"description" binding:"omitempty,max=2000"`
	Text             string `json:"text"        binding:"omitempty,max=10000"`
	DueDate          string `json:"due_date"    binding:"omitempty"` // RFC3339
	ExportToCalendar bool   `json:"export_to_calendar"`
}

func (r createReq) toInput() (task.CreateTaskInput, error) {
	input := task.CreateTaskInput{
		Title:            r.Title,
		Description:      r.Description,
		Text:             r.Text,
		ExportToCalendar: r.ExportToCalendar,
	}
	if r.DueDate != "" {
		t, err := time.Parse(time.RFC3339, r.DueDate)
		if err != nil {
			return task.CreateTaskInput{}, err
		}
		input.DueDate = &t
	}
	return input, nil
}

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListTasksInput{
		Status: r.Status,
		Limit:  limit,
		Offset: r.Offset,
	}
}

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"omitempty,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	DueDate     string `json:"due_date"    binding:"omitempty"` // RFC3339
	Status      string `json:"status"      binding:"omitempty,oneof=pending completed cancelled"`
}

func (r updateReq) toInput() (task.UpdateTaskInput, error) {
	input := task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}
	if r.DueDate != "" {
		t, err := time.Parse(time.RFC3339, r.DueDate)
		if err != nil {
			return task.UpdateTaskInput{}, err
		}
		input.DueDate = &t
	}
	return input, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Courses      []string `json:"courses"`
	Keywords     []string `json:"keywords"`
	DueDate      string   `json:"due_date,omitempty"`
	Status       string   `json:"status"`
	OriginalText string   `json:"original_text,omitempty"`
	CalendarLink string   `json:"calendar_link,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Courses:      t.Courses,
		Keywords:     t.Keywords,
		Status:       string(t.Status),
		OriginalText: t.OriginalText,
		CalendarLink: t.CalendarLink,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.Format(time.RFC3339),
	}
	if resp.Courses == nil {
		resp.Courses = []string{}
	}
	if resp.Keywords == nil {
		resp.Keywords = []string{}
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(time.RFC3339)
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
