package answersfile

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
)

// Loader reads expected answers from a YAML file.
type Loader struct {
	path string
}

var _ ports.ExpectedAnswersLoader = (*Loader)(nil)

func New(path string) *Loader {
	return &Loader{path: path}
}

// ForWorkspace resolves cfg.Paths.AnswersFile against root.
func ForWorkspace(root string, cfg domain.Config) *Loader {
	p := cfg.Paths.AnswersFile
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return New(p)
}

func (l *Loader) Path() string { return l.path }

func (l *Loader) LoadAnswers() (domain.ExpectedAnswers, error) {
	return Load(l.path)
}

// Load parses path. A missing file is KindNotFound.
func Load(path string) (domain.ExpectedAnswers, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
			err = errors.Join(domain.ErrNotFound, err)
		}
		return nil, &domain.OpError{
			Op:   "answersfile.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLAnswers
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "answersfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  errors.Join(domain.ErrInvalidConfig, err),
		}
	}

	return MapAnswers(path, dto)
}
