package usecase

import (
	"fmt"
	"path/filepath"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute creates a workspace at root. year seeds the default year and may be
// zero.
func (uc *InitWorkspace) Execute(root string, year int, force bool) error {
	if year != 0 && year < domain.FirstYear {
		return &domain.OpError{
			Op:   "workspace.init",
			Kind: domain.KindInvalidConfig,
			Path: root,
			Err:  fmt.Errorf("year %d predates %d: %w", year, domain.FirstYear, domain.ErrInvalidConfig),
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: abs, Year: year}, force); err != nil {
		return err
	}
	logger.L().Info("workspace.init", "root", abs, "force", force)
	return nil
}
