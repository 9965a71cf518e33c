package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/aoc/internal/domain"
)

// LoadConfig loads aoc.yaml from the workspace root and applies it over
// domain.DefaultConfig.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	a := y.AOC
	if a.Defaults.Year != 0 {
		cfg.Defaults.Year = a.Defaults.Year
	}
	setString(&cfg.Paths.InputsDir, a.Paths.InputsDir)
	setString(&cfg.Paths.RunsDir, a.Paths.RunsDir)
	setString(&cfg.Paths.AnswersFile, a.Paths.AnswersFile)
	setString(&cfg.Fetch.BaseURL, a.Fetch.BaseURL)
	setString(&cfg.Fetch.SessionEnv, a.Fetch.SessionEnv)
	if a.Tracing.Enabled != nil {
		cfg.Tracing.Enabled = *a.Tracing.Enabled
	}
	setString(&cfg.Tracing.Exporter, a.Tracing.Exporter)
	setString(&cfg.Tracing.FilePath, a.Tracing.FilePath)

	if err := validate(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func setString(dst *string, v string) {
	if s := strings.TrimSpace(v); s != "" {
		*dst = s
	}
}

func validate(cfg domain.Config) error {
	if cfg.Defaults.Year < domain.FirstYear {
		return fmt.Errorf("defaults.year %d predates %d", cfg.Defaults.Year, domain.FirstYear)
	}
	for field, p := range map[string]string{
		"paths.inputs_dir": cfg.Paths.InputsDir,
		"paths.runs_dir":   cfg.Paths.RunsDir,
	} {
		if filepath.IsAbs(p) {
			continue
		}
		if strings.HasPrefix(filepath.Clean(p), "..") {
			return fmt.Errorf("field %s: %q escapes the workspace", field, p)
		}
	}
	return nil
}

type yamlConfig struct {
	AOC struct {
		Defaults struct {
			Year int `yaml:"year"`
		} `yaml:"defaults"`

		Paths struct {
			InputsDir   string `yaml:"inputs_dir"`
			RunsDir     string `yaml:"runs_dir"`
			AnswersFile string `yaml:"answers_file"`
		} `yaml:"paths"`

		Fetch struct {
			BaseURL    string `yaml:"base_url"`
			SessionEnv string `yaml:"session_env"`
		} `yaml:"fetch"`

		Tracing struct {
			Enabled  *bool  `yaml:"enabled"`
			Exporter string `yaml:"exporter"`
			FilePath string `yaml:"file_path"`
		} `yaml:"tracing"`
	} `yaml:"aoc"`
}
