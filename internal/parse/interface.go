package parse

import "context"

// UseCase defines the business logic interface for the parse domain.
// All operations are pure computations: identical (Text, Now) pairs
// always produce identical results.
type UseCase interface {
	// Resolve extracts courses, keywords and the deadline phrase from a
	// single text and resolves its date against the given instant.
	Resolve(ctx context.Context, input ResolveInput) (ParseResult, error)

	// ResolveBatch processes each text independently. A batch larger
	// than MaxItems is rejected before any item is processed.
	ResolveBatch(ctx context.Context, input ResolveBatchInput) (ResolveBatchOutput, error)
}
