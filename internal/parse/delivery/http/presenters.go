package http

import (
	"time"

	"academic-calendar-core/internal/parse"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,min=1"`
}

func (r parseReq) toInput(now time.Time) parse.ResolveInput {
	return parse.ResolveInput{
		Text: r.Text,
		Now:  now,
	}
}

type parseBatchReq struct {
	Texts []string `json:"texts" binding:"required,min=1"`
}

func (r parseBatchReq) toInput(now time.Time, maxItems int) parse.ResolveBatchInput {
	return parse.ResolveBatchInput{
		Texts:    r.Texts,
		Now:      now,
		MaxItems: maxItems,
	}
}

// --- Response DTOs ---

type parseResp struct {
	OriginalText     string   `json:"original_text"`
	Courses          []string `json:"courses"`
	Keywords         []string `json:"keywords"`
	DeadlinePhrase   string   `json:"deadline_phrase,omitempty"`
	ResolvedDatetime string   `json:"resolved_datetime,omitempty"`
	StrategyUsed     string   `json:"strategy_used"`
}

func newParseResp(result parse.ParseResult) parseResp {
	resp := parseResp{
		OriginalText:   result.OriginalText,
		Courses:        result.Courses,
		Keywords:       result.Keywords,
		DeadlinePhrase: result.DeadlinePhrase,
		StrategyUsed:   string(result.Strategy),
	}
	if resp.Courses == nil {
		resp.Courses = []string{}
	}
	if resp.Keywords == nil {
		resp.Keywords = []string{}
	}
	if result.ResolvedAt != nil {
		resp.ResolvedDatetime = result.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}

type parseBatchResp struct {
	Results []parseResp `json:"results"`
	Count   int         `json:"count"`
}

func (h *handler) newParseBatchResp(out parse.ResolveBatchOutput) parseBatchResp {
	results := make([]parseResp, len(out.Results))
	for i, result := range out.Results {
		results[i] = newParseResp(result)
	}
	return parseBatchResp{
		Results: results,
		Count:   out.Count,
	}
}
