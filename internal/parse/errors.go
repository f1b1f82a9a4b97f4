package parse

import "errors"

// Domain-specific errors for the parse package.
var (
	ErrBatchTooLarge = errors.New("batch exceeds the maximum number of texts")
)
