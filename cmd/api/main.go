package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"academic-calendar-core/config"
	_ "academic-calendar-core/docs" // Swagger docs
	"academic-calendar-core/internal/httpserver"
	"academic-calendar-core/internal/middleware"
	taskRepo "academic-calendar-core/internal/task/repository/sqlite"
	taskUC "academic-calendar-core/internal/task/usecase"
	"academic-calendar-core/pkg/gcalendar"
	"academic-calendar-core/pkg/log"
)

// @title       Academic Calendar Core API
// @description Parses academic texts into course codes, keywords and resolved deadlines, and manages the resulting tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Academic Calendar Core...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Parser timezone: %s", cfg.Parser.Timezone)

	// 3. Storage
	if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." && cfg.Storage.SQLitePath != ":memory:" {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			logger.Errorf(ctx, "Failed to create data directory %q: %v", dir, mkErr)
			return
		}
	}
	db, err := taskRepo.Open(cfg.Storage.SQLitePath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open sqlite store: %v", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite store ready at %s", cfg.Storage.SQLitePath)

	// 4. Google Calendar client (optional)
	var calendarClient taskUC.CalendarExporter
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Calendar:    calendarClient,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		Middleware: middleware.Config{
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
			RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		},
		Parser: httpserver.ParserConfig{
			Timezone:        cfg.Parser.Timezone,
			MaxPhraseTokens: cfg.Parser.MaxPhraseTokens,
			MaxBatchItems:   cfg.Parser.MaxBatchItems,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
