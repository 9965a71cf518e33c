package tui

import (
	"log/slog"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
	"github.com/aalvaropc/aoc/internal/usecase"
)

// InputChecker reports whether a day's input is present locally.
type InputChecker interface {
	Available(k domain.Key) bool
}

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// WorkspaceRoot is empty when aoc was started outside a workspace.
	WorkspaceRoot string
	Year          int
	Days          []domain.Key

	// Solver is nil without a workspace; the browser then only lists days.
	Solver *usecase.SolveDay
	Inputs InputChecker

	Logger *slog.Logger
	Debug  bool
}
