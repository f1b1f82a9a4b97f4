package usecase

import (
	"context"
	"time"

	"academic-calendar-core/internal/parse"
	"academic-calendar-core/pkg/dateresolve"
	"academic-calendar-core/pkg/extract"
)

// Resolve extracts metadata from a single text and resolves its date
// against input.Now.
func (uc *implUseCase) Resolve(ctx context.Context, input parse.ResolveInput) (parse.ParseResult, error) {
	return uc.resolveOne(ctx, input.Text, input.Now), nil
}

// resolveOne runs the full extraction pipeline for one text. Any
// internal fault is caught here and degrades the item to an extraction
// miss, so batch siblings are never affected.
func (uc *implUseCase) resolveOne(ctx context.Context, text string, now time.Time) (result parse.ParseResult) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "parse.resolveOne: recovered fault (input_length=%d): %v", len(text), r)
			result = parse.ParseResult{
				OriginalText: text,
				Strategy:     dateresolve.StrategyNone,
			}
		}
	}()

	result = parse.ParseResult{
		OriginalText: text,
		Courses:      extract.CourseCodes(text),
		Keywords:     extract.Keywords(text),
		Strategy:     dateresolve.StrategyNone,
	}

	// Date resolution reads the deadline phrase when one exists,
	// otherwise the whole text.
	target := text
	if phrase, ok := extract.DeadlinePhrase(text, uc.maxPhraseTokens); ok {
		result.DeadlinePhrase = phrase
		target = phrase
	}

	// An explicit machine-formatted date wins wherever it sits, even
	// outside the phrase window.
	if res, ok := uc.resolver.ResolveExplicit(text); ok {
		resolved := res.Time
		result.ResolvedAt = &resolved
		result.Strategy = res.Strategy
		return result
	}

	if res, ok := uc.resolver.Resolve(target, now); ok {
		resolved := res.Time
		result.ResolvedAt = &resolved
		result.Strategy = res.Strategy
	}
	return result
}
