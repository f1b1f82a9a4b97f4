package usecase

import (
	"time"

	"academic-calendar-core/pkg/dateresolve"
	pkgLog "academic-calendar-core/pkg/log"
)

// DateResolver is the strategy-chain dependency of the orchestrator.
// Satisfied by *dateresolve.Resolver.
type DateResolver interface {
	Resolve(text string, now time.Time) (dateresolve.Resolution, bool)
	ResolveExplicit(text string) (dateresolve.Resolution, bool)
}

type implUseCase struct {
	l               pkgLog.Logger
	resolver        DateResolver
	maxPhraseTokens int
}

// New creates a new parse UseCase instance. maxPhraseTokens bounds the
// deadline-phrase window; <= 0 selects the extractor default.
func New(l pkgLog.Logger, resolver DateResolver, maxPhraseTokens int) *implUseCase {
	return &implUseCase{
		l:               l,
		resolver:        resolver,
		maxPhraseTokens: maxPhraseTokens,
	}
}
