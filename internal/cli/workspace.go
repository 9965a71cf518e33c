package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/answersfile"
	"github.com/aalvaropc/aoc/internal/infra/inputfs"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/infra/runstore"
	"github.com/aalvaropc/aoc/internal/infra/tracing"
	"github.com/aalvaropc/aoc/internal/infra/workspacefinder"
	"github.com/aalvaropc/aoc/internal/input"
	"github.com/aalvaropc/aoc/internal/ports"
	"github.com/aalvaropc/aoc/internal/puzzles"
	"github.com/aalvaropc/aoc/internal/registry"
	"github.com/aalvaropc/aoc/internal/usecase"
)

var errNoWorkspace = errors.New("workspace not found")

type workspaceCtx struct {
	root string
	cfg  domain.Config

	catalog *registry.Catalog
	inputs  *inputfs.Store
	store   *runstore.JSONStore
	answers *answersfile.Loader
	tracing *tracing.Provider

	closeLog func() error
}

// openWorkspace wires the workspace found from --workspace or the current
// directory. With optional set, a missing workspace yields a context rooted
// nowhere that can still solve explicit input files.
func openWorkspace(v *viper.Viper, optional bool) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(v.GetString(keyWorkspace))
	if err != nil {
		if optional {
			return &workspaceCtx{
				cfg:     domain.DefaultConfig(),
				catalog: defaultCatalog(),
				tracing: mustNoopTracing(),
			}, nil
		}
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	closeLog, err := logger.Setup(logger.Config{Root: root, Debug: v.GetBool(keyDebug)})
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	if v.GetBool(keyDebug) && logger.IsReady() == nil {
		fmt.Fprintf(os.Stderr, "aoc: logging to %s\n", logger.Path())
	}

	tp, err := tracing.NewProvider(cfg.Tracing, root)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		catalog:  defaultCatalog(),
		inputs:   inputfs.New(root, cfg),
		store:    runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
		answers:  answersfile.ForWorkspace(root, cfg),
		tracing:  tp,
		closeLog: closeLog,
	}, nil
}

func (ws *workspaceCtx) close(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := ws.tracing.Shutdown(ctx); err != nil {
		logger.L().Warn("tracing.shutdown_failed", "err", err)
	}
	if ws.closeLog != nil {
		_ = ws.closeLog()
	}
}

func (ws *workspaceCtx) log() *slog.Logger { return logger.L() }

// solver builds SolveDay; save is ignored outside a workspace.
func (ws *workspaceCtx) solver(save bool) *usecase.SolveDay {
	opts := []usecase.SolveOption{usecase.WithTracer(ws.tracing.Tracer())}
	if save && ws.store != nil {
		opts = append(opts, usecase.WithStore(ws.store))
	}

	var src ports.InputSource = noWorkspaceInputs{}
	if ws.inputs != nil {
		src = ws.inputs
	}
	return usecase.NewSolveDay(ws.catalog, src, opts...)
}

// noWorkspaceInputs serves runs started outside a workspace.
type noWorkspaceInputs struct{}

func (noWorkspaceInputs) Load(_ context.Context, k domain.Key) (input.Input, error) {
	return input.Input{}, &domain.OpError{
		Op:   "cli.input",
		Kind: domain.KindInputUnavailable,
		Key:  k,
		Err:  fmt.Errorf("%w: no workspace (tip: run `aoc init` or pass --input)", domain.ErrInputUnavailable),
	}
}

func defaultCatalog() *registry.Catalog { return puzzles.Catalog() }

func mustNoopTracing() *tracing.Provider {
	tp, _ := tracing.NewProvider(domain.TracingConfig{}, "")
	return tp
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		if _, err := os.Stat(filepath.Join(abs, workspacefinder.ConfigFile)); err != nil {
			return "", fmt.Errorf("%w at %q (tip: run `aoc init`): %w", errNoWorkspace, abs, err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("%w from %q (tip: run `aoc init`): %w", errNoWorkspace, wd, err)
	}
	return root, nil
}

// sessionToken reads AOC_SESSION through viper, then the env var named by
// fetch.session_env.
func sessionToken(v *viper.Viper, cfg domain.Config) string {
	if s := strings.TrimSpace(v.GetString(keySession)); s != "" {
		return s
	}
	if name := strings.TrimSpace(cfg.Fetch.SessionEnv); name != "" {
		return strings.TrimSpace(os.Getenv(name))
	}
	return ""
}
