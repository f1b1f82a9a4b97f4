package parse

import (
	"time"

	"academic-calendar-core/pkg/dateresolve"
)

// DefaultMaxBatchItems caps ResolveBatch when the caller does not
// configure a limit.
const DefaultMaxBatchItems = 100

// ResolveInput is the input for single-text resolution. Now is the
// reference instant for relative dates and must be supplied explicitly —
// the engine never reads the system clock.
type ResolveInput struct {
	Text string
	Now  time.Time
}

// ResolveBatchInput is the input for batch resolution. MaxItems <= 0
// selects DefaultMaxBatchItems.
type ResolveBatchInput struct {
	Texts    []string
	Now      time.Time
	MaxItems int
}

// ParseResult is everything extracted from one text. Courses and
// Keywords are deduplicated and ordered by first occurrence.
// ResolvedAt is nil exactly when Strategy is StrategyNone.
type ParseResult struct {
	OriginalText   string
	Courses        []string
	Keywords       []string
	DeadlinePhrase string // empty when no temporal trigger was found
	ResolvedAt     *time.Time
	Strategy       dateresolve.Strategy
}

// ResolveBatchOutput is the result of batch resolution; Results keeps
// the input order.
type ResolveBatchOutput struct {
	Results []ParseResult
	Count   int
}
