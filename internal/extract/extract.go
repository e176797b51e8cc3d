package extract

import "context"

// Extractor turns free text into skill labels drawn from a fixed vocabulary.
// Implementations may match lexically or semantically; both return canonical
// labels only.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
}

// DefaultSimilarity is the similarity threshold used when the caller does not
// configure one.
const DefaultSimilarity = 0.75
