package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"academic-calendar-core/internal/parse"
	taskHTTP "academic-calendar-core/internal/task/delivery/http"
	taskRepo "academic-calendar-core/internal/task/repository/sqlite"
	taskUC "academic-calendar-core/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
// The parse use case enriches tasks created from raw text.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, parser parse.UseCase) error {
	// 1. Repository
	repo := taskRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := taskUC.New(repo, parser, srv.calendar, srv.calendarID, srv.parser.Timezone, srv.l)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
