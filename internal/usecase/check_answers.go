package usecase

import (
	"context"
	"sort"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
)

// CheckReport lists per-day comparisons ordered by year then day.
type CheckReport struct {
	Days []domain.DayCheck `json:"days"`
}

// Passed reports whether no part mismatched or failed.
func (r CheckReport) Passed() bool {
	for _, d := range r.Days {
		if !d.Passed() {
			return false
		}
	}
	return true
}

// Count returns how many part checks ended with status s.
func (r CheckReport) Count(s domain.CheckStatus) int {
	n := 0
	for _, d := range r.Days {
		for _, p := range d.Parts {
			if p.Status == s {
				n++
			}
		}
	}
	return n
}

// CheckAnswers solves every day listed in the expected answers and compares.
type CheckAnswers struct {
	answers ports.ExpectedAnswersLoader
	solver  *SolveDay
}

func NewCheckAnswers(answers ports.ExpectedAnswersLoader, solver *SolveDay) *CheckAnswers {
	return &CheckAnswers{answers: answers, solver: solver}
}

// Execute checks the days of year, or every listed day when year is zero.
func (uc *CheckAnswers) Execute(ctx context.Context, year int) (CheckReport, error) {
	expected, err := uc.answers.LoadAnswers()
	if err != nil {
		return CheckReport{}, err
	}

	keys := make([]domain.Key, 0, len(expected))
	for k := range expected {
		if year == 0 || k.Year == year {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Day < keys[j].Day
	})

	var report CheckReport
	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, solveErr := uc.solver.Solve(ctx, k)
		exp := expected[k]
		dc := domain.DayCheck{Key: k}
		for _, p := range []domain.Part{domain.PartOne, domain.PartTwo} {
			if solveErr != nil {
				dc.Parts = append(dc.Parts, domain.PartCheck{
					Part:     p,
					Status:   domain.CheckFailed,
					Expected: exp.For(p),
					Message:  solveErr.Error(),
				})
				continue
			}
			dc.Parts = append(dc.Parts, domain.CompareAnswer(p, exp.For(p), res.Answer(p)))
		}
		report.Days = append(report.Days, dc)
	}
	return report, nil
}
