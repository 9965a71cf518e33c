package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
	"github.com/aalvaropc/aoc/internal/ports"
)

// --- resolver ---

type fakeResolver map[domain.Key]domain.Constructor

func (f fakeResolver) Resolve(k domain.Key) (domain.Constructor, error) {
	ctor, ok := f[k]
	if !ok {
		return nil, domain.DayNotFound("fake.resolve", k)
	}
	return ctor, nil
}

func (f fakeResolver) Keys() []domain.Key {
	out := make([]domain.Key, 0, len(f))
	for k := range f {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// --- input source ---

type fakeSource struct {
	texts map[domain.Key]string
	err   error
	calls atomic.Int32
}

func (f *fakeSource) Load(_ context.Context, k domain.Key) (input.Input, error) {
	f.calls.Add(1)
	if f.err != nil {
		return input.Input{}, f.err
	}
	return input.New(f.texts[k]), nil
}

// --- store ---

type fakeStore struct {
	mu   sync.Mutex
	runs []domain.RunArtifact
	raw  map[string][]byte
	err  error
}

func (s *fakeStore) SaveRun(run domain.RunArtifact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.runs = append(s.runs, run)
	return "run-" + run.Name, nil
}

func (s *fakeStore) ListRuns() ([]domain.RunRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.RunRef, 0, len(s.runs))
	for _, r := range s.runs {
		out = append(out, domain.RunRef{ID: "run-" + r.Name, Name: r.Name})
	}
	return out, nil
}

func (s *fakeStore) LoadRun(id string) ([]byte, error) {
	b, ok := s.raw[id]
	if !ok {
		return nil, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return b, nil
}

// --- days ---

// sumDay answers with the sum of its integers and their count.
type sumDay struct{ nums []int }

func newSumDay(in input.Input) (domain.Day, error) {
	nums, err := input.DecodeMany(in, "\n", input.Int, input.OnElementError(input.Fail))
	if err != nil {
		return nil, err
	}
	return sumDay{nums: nums}, nil
}

func (d sumDay) PartOne(context.Context) (string, error) {
	s := 0
	for _, n := range d.nums {
		s += n
	}
	return strconv.Itoa(s), nil
}

func (d sumDay) PartTwo(context.Context) (string, error) {
	return strconv.Itoa(len(d.nums)), nil
}

var errPartTwo = errors.New("part two not solvable")

// halfDay solves part one and fails part two.
type halfDay struct{}

func (halfDay) PartOne(context.Context) (string, error) { return "one", nil }
func (halfDay) PartTwo(context.Context) (string, error) { return "", errPartTwo }

// panicDay panics in part one.
type panicDay struct{}

func (panicDay) PartOne(context.Context) (string, error) { panic("boom") }
func (panicDay) PartTwo(context.Context) (string, error) { return "fine", nil }

// blockDay waits for cancellation.
type blockDay struct{}

func (blockDay) PartOne(ctx context.Context) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}
func (blockDay) PartTwo(ctx context.Context) (string, error) { return blockDay{}.PartOne(ctx) }

func constant(d domain.Day) domain.Constructor {
	return func(input.Input) (domain.Day, error) { return d, nil }
}

var (
	_ ports.Resolver      = fakeResolver(nil)
	_ ports.InputSource   = (*fakeSource)(nil)
	_ ports.ArtifactStore = (*fakeStore)(nil)
)
