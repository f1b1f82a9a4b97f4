package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"academic-calendar-core/internal/parse/usecase"
	"academic-calendar-core/pkg/dateresolve"
	"academic-calendar-core/pkg/response"
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

func newTestEngine(t *testing.T, maxBatchItems int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver, err := dateresolve.NewResolver("UTC")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	uc := usecase.New(&mockLogger{}, resolver, 0)
	h := New(&mockLogger{}, uc, maxBatchItems)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParseEndpoint(t *testing.T) {
	r := newTestEngine(t, 0)

	// An explicit datetime keeps the expectation independent of the clock.
	w := postJSON(t, r, "/api/v1/parse", gin.H{"text": "CS101 homework due 2099-12-01 09:00"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		ErrorCode int       `json:"error_code"`
		Data      parseResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", resp.ErrorCode)
	}
	if got, want := resp.Data.OriginalText, "CS101 homework due 2099-12-01 09:00"; got != want {
		t.Errorf("original_text = %q, want %q", got, want)
	}
	if len(resp.Data.Courses) != 1 || resp.Data.Courses[0] != "CS101" {
		t.Errorf("courses = %v, want [CS101]", resp.Data.Courses)
	}
	if resp.Data.StrategyUsed != string(dateresolve.StrategyExplicit) {
		t.Errorf("strategy_used = %q, want %q", resp.Data.StrategyUsed, dateresolve.StrategyExplicit)
	}
	if resp.Data.ResolvedDatetime != "2099-12-01T09:00:00Z" {
		t.Errorf("resolved_datetime = %q, want %q", resp.Data.ResolvedDatetime, "2099-12-01T09:00:00Z")
	}
}

func TestParseEndpointRejectsEmptyBody(t *testing.T) {
	r := newTestEngine(t, 0)

	w := postJSON(t, r, "/api/v1/parse", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestParseBatchEndpoint(t *testing.T) {
	r := newTestEngine(t, 0)

	w := postJSON(t, r, "/api/v1/parse/batch", gin.H{
		"texts": []string{"CS101 quiz 2099-01-10", "nothing temporal here"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		Data parseBatchResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Count != 2 {
		t.Errorf("count = %d, want 2", resp.Data.Count)
	}
	if len(resp.Data.Results) != 2 {
		t.Fatalf("results length = %d, want 2", len(resp.Data.Results))
	}
	if resp.Data.Results[1].StrategyUsed != string(dateresolve.StrategyNone) {
		t.Errorf("results[1].strategy_used = %q, want %q", resp.Data.Results[1].StrategyUsed, dateresolve.StrategyNone)
	}
}

func TestParseBatchEndpointTooLarge(t *testing.T) {
	r := newTestEngine(t, 3)

	w := postJSON(t, r, "/api/v1/parse/batch", gin.H{
		"texts": []string{"a", "b", "c", "d"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ErrorCode == 0 {
		t.Error("error_code = 0, want non-zero")
	}
}
