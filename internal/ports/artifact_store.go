package ports

import "github.com/aalvaropc/aoc/internal/domain"

// ArtifactStore persists run artifacts for reproducibility.
type ArtifactStore interface {
	SaveRun(run domain.RunArtifact) (id string, err error)
	ListRuns() ([]domain.RunRef, error)
	// LoadRun returns the raw JSON of a saved artifact.
	LoadRun(id string) ([]byte, error)
}
