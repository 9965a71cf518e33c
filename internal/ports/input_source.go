package ports

import (
	"context"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
)

// InputSource supplies the raw puzzle input for a day.
type InputSource interface {
	Load(ctx context.Context, key domain.Key) (input.Input, error)
}

// InputFetcher downloads a puzzle input from a remote service.
type InputFetcher interface {
	Fetch(ctx context.Context, key domain.Key) (string, error)
}

// InputWriter stores a fetched input where an InputSource can find it.
type InputWriter interface {
	// Save writes text for key and returns the path written. Existing inputs
	// are kept unless overwrite is set.
	Save(key domain.Key, text string, overwrite bool) (string, error)
}
