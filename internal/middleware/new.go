package middleware

import (
	"academic-calendar-core/pkg/log"
)

// Config holds the knobs for the HTTP middlewares.
type Config struct {
	// AllowedOrigins lists origins for CORS; empty allows any origin.
	AllowedOrigins []string
	// RateLimitPerMin caps requests per client IP; <= 0 disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	config  Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:      l,
		config: cfg,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
