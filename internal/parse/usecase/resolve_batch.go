package usecase

import (
	"context"
	"sync"

	"academic-calendar-core/internal/parse"
)

// ResolveBatch processes every text independently and in parallel.
// The cap is enforced before any item is processed; item order is
// preserved in the output.
func (uc *implUseCase) ResolveBatch(ctx context.Context, input parse.ResolveBatchInput) (parse.ResolveBatchOutput, error) {
	maxItems := input.MaxItems
	if maxItems <= 0 {
		maxItems = parse.DefaultMaxBatchItems
	}
	if len(input.Texts) > maxItems {
		return parse.ResolveBatchOutput{}, parse.ErrBatchTooLarge
	}

	results := make([]parse.ParseResult, len(input.Texts))
	var wg sync.WaitGroup
	for i, text := range input.Texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			results[i] = uc.resolveOne(ctx, text, input.Now)
		}(i, text)
	}
	wg.Wait()

	return parse.ResolveBatchOutput{
		Results: results,
		Count:   len(results),
	}, nil
}
