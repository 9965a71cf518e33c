package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/ports"
)

// FetchInput downloads a puzzle input into the workspace.
type FetchInput struct {
	fetcher ports.InputFetcher
	writer  ports.InputWriter
}

func NewFetchInput(f ports.InputFetcher, w ports.InputWriter) *FetchInput {
	return &FetchInput{fetcher: f, writer: w}
}

// Execute fetches key and returns the path written. Existing inputs are kept
// unless force is set.
func (uc *FetchInput) Execute(ctx context.Context, key domain.Key, force bool) (string, error) {
	if key.Year < domain.FirstYear || !domain.ValidDay(key.Day) {
		return "", &domain.OpError{
			Op:   "fetch.validate",
			Kind: domain.KindInvalidConfig,
			Key:  key,
			Err:  fmt.Errorf("no puzzle for %s: %w", key, domain.ErrInvalidConfig),
		}
	}

	text, err := uc.fetcher.Fetch(ctx, key)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", &domain.OpError{
			Op:   "fetch.validate",
			Kind: domain.KindInputUnavailable,
			Key:  key,
			Err:  fmt.Errorf("empty input: %w", domain.ErrInputUnavailable),
		}
	}

	path, err := uc.writer.Save(key, text, force)
	if err != nil {
		return "", err
	}
	logger.ForDay(key).Info("fetch.saved", "path", path, "bytes", len(text))
	return path, nil
}
