package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"academic-calendar-core/internal/middleware"
	"academic-calendar-core/internal/model"
	taskUC "academic-calendar-core/internal/task/usecase"
	"academic-calendar-core/pkg/log"
)

// ParserConfig holds the text-parsing knobs exposed through configuration.
type ParserConfig struct {
	Timezone        string
	MaxPhraseTokens int
	MaxBatchItems   int
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Optional calendar export; nil disables it.
	calendar   taskUC.CalendarExporter
	calendarID string

	middleware middleware.Config
	parser     ParserConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB         *sql.DB
	Calendar   taskUC.CalendarExporter
	CalendarID string

	Middleware middleware.Config
	Parser     ParserConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	mode := cfg.Mode
	if cfg.Environment == string(model.EnvironmentProduction) {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		calendar:    cfg.Calendar,
		calendarID:  cfg.CalendarID,
		middleware:  cfg.Middleware,
		parser:      cfg.Parser,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	return nil
}
