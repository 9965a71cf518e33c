package usecase

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/ports"
)

// Batch is the outcome of solving several days. Results and Errors are
// parallel slices ordered by day.
type Batch struct {
	Results []domain.Result
	Errors  []error
}

// Failed counts days with a stage error or a failed part.
func (b Batch) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// SolveAll solves many days concurrently. Days share nothing, so each one
// runs on its own goroutine up to the configured limit.
type SolveAll struct {
	solver   *SolveDay
	resolver ports.Resolver
	store    ports.ArtifactStore
	limit    int
}

type SolveAllOption func(*SolveAll)

func WithLimit(n int) SolveAllOption {
	return func(uc *SolveAll) {
		if n > 0 {
			uc.limit = n
		}
	}
}

func WithBatchStore(s ports.ArtifactStore) SolveAllOption {
	return func(uc *SolveAll) { uc.store = s }
}

func NewSolveAll(solver *SolveDay, r ports.Resolver, opts ...SolveAllOption) *SolveAll {
	uc := &SolveAll{
		solver:   solver,
		resolver: r,
		limit:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves days of year; with no days it solves every registered day of
// that year. Per-day failures are collected in the batch. The returned error
// is reserved for cancellation and for failing to save the batch.
func (uc *SolveAll) Execute(ctx context.Context, year int, days []int) (Batch, string, error) {
	keys := uc.keys(year, days)
	batch := Batch{
		Results: make([]domain.Result, len(keys)),
		Errors:  make([]error, len(keys)),
	}

	logger.L().Info("solve_all.start", "year", year, "days", len(keys), "limit", uc.limit)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.limit)
	for i, k := range keys {
		g.Go(func() error {
			// Each goroutine writes only its own index.
			batch.Results[i], batch.Errors[i] = uc.solver.Solve(gctx, k)
			return nil
		})
	}
	_ = g.Wait()

	logger.L().Info("solve_all.done", "year", year, "failed", batch.Failed())

	if err := ctx.Err(); err != nil {
		return batch, "", err
	}
	if uc.store == nil || len(keys) == 0 {
		return batch, "", nil
	}
	id, err := uc.store.SaveRun(uc.solver.artifact(fmt.Sprintf("%d-all", year), batch.Results))
	return batch, id, err
}

func (uc *SolveAll) keys(year int, days []int) []domain.Key {
	var keys []domain.Key
	if len(days) == 0 {
		for _, k := range uc.resolver.Keys() {
			if k.Year == year {
				keys = append(keys, k)
			}
		}
	} else {
		seen := map[int]bool{}
		for _, d := range days {
			if seen[d] {
				continue
			}
			seen[d] = true
			keys = append(keys, domain.Key{Year: year, Day: d})
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Day < keys[j].Day })
	return keys
}
