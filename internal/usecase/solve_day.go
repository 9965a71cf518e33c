package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/logger"
	"github.com/aalvaropc/aoc/internal/infra/tracing"
	"github.com/aalvaropc/aoc/internal/input"
	"github.com/aalvaropc/aoc/internal/ports"
)

// SolveDay drives one puzzle day through resolve, load, construct and both
// parts.
type SolveDay struct {
	resolver ports.Resolver
	inputs   ports.InputSource
	store    ports.ArtifactStore
	tracer   trace.Tracer
	now      func() time.Time
}

type SolveOption func(*SolveDay)

// WithStore saves every result as a run artifact.
func WithStore(s ports.ArtifactStore) SolveOption {
	return func(uc *SolveDay) { uc.store = s }
}

func WithTracer(t trace.Tracer) SolveOption {
	return func(uc *SolveDay) {
		if t != nil {
			uc.tracer = t
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) SolveOption {
	return func(uc *SolveDay) { uc.now = now }
}

func NewSolveDay(r ports.Resolver, src ports.InputSource, opts ...SolveOption) *SolveDay {
	uc := &SolveDay{
		resolver: r,
		inputs:   src,
		tracer:   noop.NewTracerProvider().Tracer(tracing.ServiceName),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves key with its input from the configured source and saves the
// result when a store is set. The returned error is the stage error, if any,
// or the save error; part failures only show up on the Result.
func (uc *SolveDay) Execute(ctx context.Context, key domain.Key) (domain.Result, string, error) {
	res, err := uc.Solve(ctx, key)
	return uc.finish(res, err)
}

// ExecuteInput is Execute with an explicit input; the source is not consulted.
func (uc *SolveDay) ExecuteInput(ctx context.Context, key domain.Key, in input.Input) (domain.Result, string, error) {
	res, err := uc.solve(ctx, key, func(context.Context) (input.Input, error) { return in, nil })
	return uc.finish(res, err)
}

// Solve runs the stages for key without saving anything.
func (uc *SolveDay) Solve(ctx context.Context, key domain.Key) (domain.Result, error) {
	return uc.solve(ctx, key, func(ctx context.Context) (input.Input, error) {
		return uc.inputs.Load(ctx, key)
	})
}

func (uc *SolveDay) finish(res domain.Result, err error) (domain.Result, string, error) {
	if uc.store == nil {
		return res, "", err
	}
	id, saveErr := uc.store.SaveRun(uc.artifact(runName(res.Key), []domain.Result{res}))
	if saveErr != nil && err == nil {
		err = saveErr
	}
	return res, id, err
}

func (uc *SolveDay) artifact(name string, results []domain.Result) domain.RunArtifact {
	run := domain.RunArtifact{
		ID:      uuid.NewString(),
		Name:    name,
		Results: results,
	}
	for i, r := range results {
		if i == 0 || r.StartedAt.Before(run.StartedAt) {
			run.StartedAt = r.StartedAt
		}
		if r.EndedAt.After(run.FinishedAt) {
			run.FinishedAt = r.EndedAt
		}
		if run.Year == 0 {
			run.Year = r.Key.Year
		}
	}
	return run
}

func runName(k domain.Key) string {
	return fmt.Sprintf("%d-day%02d", k.Year, k.Day)
}

func (uc *SolveDay) solve(ctx context.Context, k domain.Key, load func(context.Context) (input.Input, error)) (res domain.Result, err error) {
	res = domain.Result{Key: k, StartedAt: uc.now()}
	log := logger.ForDay(k)

	ctx, span := tracing.Start(ctx, uc.tracer, tracing.SpanSolve, k)
	defer func() {
		res.EndedAt = uc.now()
		if err != nil {
			res.Error = domain.NewStageError(err)
			log.Warn("solve.failed", "kind", domain.KindOf(err), "err", err)
		} else {
			log.Info("solve.ok",
				"part_one_ok", res.PartOne.OK(),
				"part_two_ok", res.PartTwo.OK(),
				"duration_ms", res.EndedAt.Sub(res.StartedAt).Milliseconds(),
			)
		}
		tracing.End(span, err)
	}()

	log.Debug("solve.start")

	if err := ctx.Err(); err != nil {
		return res, err
	}

	ctor, err := uc.resolve(ctx, k)
	if err != nil {
		return res, err
	}

	in, err := uc.load(ctx, k, load)
	if err != nil {
		return res, err
	}

	day, err := uc.construct(ctx, k, ctor, in)
	if err != nil {
		return res, err
	}

	res.PartOne = uc.part(ctx, k, day, domain.PartOne)
	res.PartTwo = uc.part(ctx, k, day, domain.PartTwo)
	return res, nil
}

func (uc *SolveDay) resolve(ctx context.Context, k domain.Key) (ctor domain.Constructor, err error) {
	_, span := tracing.Start(ctx, uc.tracer, tracing.SpanResolve, k)
	defer func() { tracing.End(span, err) }()

	return uc.resolver.Resolve(k)
}

func (uc *SolveDay) load(ctx context.Context, k domain.Key, load func(context.Context) (input.Input, error)) (in input.Input, err error) {
	ctx, span := tracing.Start(ctx, uc.tracer, tracing.SpanLoadInput, k)
	defer func() { tracing.End(span, err) }()

	in, err = load(ctx)
	if err != nil && domain.KindOf(err) == "" {
		err = &domain.OpError{
			Op:   "solve.load_input",
			Kind: domain.KindInputUnavailable,
			Key:  k,
			Err:  fmt.Errorf("%w: %w", domain.ErrInputUnavailable, err),
		}
	}
	return in, err
}

func (uc *SolveDay) construct(ctx context.Context, k domain.Key, ctor domain.Constructor, in input.Input) (day domain.Day, err error) {
	_, span := tracing.Start(ctx, uc.tracer, tracing.SpanConstruct, k)
	defer func() { tracing.End(span, err) }()

	defer func() {
		if r := recover(); r != nil {
			day, err = nil, domain.MalformedInput("solve.construct", k, fmt.Errorf("constructor panicked: %v", r))
		}
	}()

	day, err = ctor(in)
	if err != nil {
		return nil, domain.MalformedInput("solve.construct", k, err)
	}
	if day == nil {
		return nil, domain.MalformedInput("solve.construct", k, fmt.Errorf("constructor returned no day"))
	}
	return day, nil
}

func (uc *SolveDay) part(ctx context.Context, k domain.Key, day domain.Day, p domain.Part) (ans domain.Answer) {
	ctx, span := tracing.Start(ctx, uc.tracer, tracing.PartSpan(p), k)
	start := uc.now()

	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", p, r)
		}
		ans.DurationMS = uc.now().Sub(start).Milliseconds()
		ans.Error = domain.NewRunError(err)
		if err != nil {
			ans.Value = ""
			logger.ForDay(k).Warn("part.failed", "part", p.String(), "err", err)
		}
		tracing.End(span, err)
	}()

	if err = ctx.Err(); err != nil {
		return ans
	}
	ans.Value, err = domain.Solve(ctx, day, p)
	return ans
}
