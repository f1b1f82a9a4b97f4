package http

import (
	"academic-calendar-core/internal/parse"
	"academic-calendar-core/pkg/log"
)

// Handler is the public interface for the parse HTTP delivery layer.
type Handler interface {
	Parse(c interface{})
	ParseBatch(c interface{})
}

type handler struct {
	l             log.Logger
	uc            parse.UseCase
	maxBatchItems int
}

// New creates a new HTTP handler for the parse domain. maxBatchItems <= 0
// keeps the use case default.
func New(l log.Logger, uc parse.UseCase, maxBatchItems int) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		maxBatchItems: maxBatchItems,
	}
}
