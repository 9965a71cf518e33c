package usecase

import (
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
	"github.com/aalvaropc/aoc/internal/usecase/extract"
)

// QueryRuns reads saved run artifacts.
type QueryRuns struct {
	store ports.ArtifactStore
}

func NewQueryRuns(s ports.ArtifactStore) *QueryRuns {
	return &QueryRuns{store: s}
}

// List returns saved runs, newest first.
func (uc *QueryRuns) List() ([]domain.RunRef, error) {
	refs, err := uc.store.ListRuns()
	if err != nil {
		return nil, err
	}
	out := make([]domain.RunRef, len(refs))
	for i, r := range refs {
		out[len(refs)-1-i] = r
	}
	return out, nil
}

// Show returns the artifact id as JSON, or the value selected by a JSONPath
// query when one is given.
func (uc *QueryRuns) Show(id, query string) (string, error) {
	b, err := uc.store.LoadRun(id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(query) == "" {
		return string(b), nil
	}
	return extract.Query(b, query)
}
