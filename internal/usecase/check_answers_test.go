package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc/internal/domain"
)

type fakeAnswers struct {
	answers domain.ExpectedAnswers
	err     error
}

func (f fakeAnswers) LoadAnswers() (domain.ExpectedAnswers, error) {
	return f.answers, f.err
}

func TestCheckAnswers_Statuses(t *testing.T) {
	r := yearResolver()
	uc := NewCheckAnswers(fakeAnswers{answers: domain.ExpectedAnswers{
		{Year: 2020, Day: 1}:  {PartOne: "3", PartTwo: "999"},
		{Year: 2020, Day: 2}:  {PartOne: "one"},
		{Year: 2020, Day: 25}: {PartOne: "x"},
		{Year: 2019, Day: 1}:  {PartOne: "0"},
	}}, NewSolveDay(r, yearSource()))

	report, err := uc.Execute(context.Background(), 2020)
	require.NoError(t, err)
	require.Len(t, report.Days, 3)

	d1 := report.Days[0]
	assert.Equal(t, domain.Key{Year: 2020, Day: 1}, d1.Key)
	assert.Equal(t, domain.CheckMatch, d1.Parts[0].Status)
	assert.Equal(t, domain.CheckMismatch, d1.Parts[1].Status)

	d2 := report.Days[1]
	assert.Equal(t, domain.CheckMatch, d2.Parts[0].Status)
	assert.Equal(t, domain.CheckFailed, d2.Parts[1].Status)

	d25 := report.Days[2]
	assert.Equal(t, domain.CheckFailed, d25.Parts[0].Status)
	assert.Contains(t, d25.Parts[0].Message, "day not found")

	assert.False(t, report.Passed())
	assert.Equal(t, 2, report.Count(domain.CheckMatch))
	assert.Equal(t, 1, report.Count(domain.CheckMismatch))
}

func TestCheckAnswers_Unchecked(t *testing.T) {
	r := yearResolver()
	uc := NewCheckAnswers(fakeAnswers{answers: domain.ExpectedAnswers{
		{Year: 2020, Day: 1}: {PartOne: "3"},
	}}, NewSolveDay(r, yearSource()))

	report, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, report.Days, 1)
	assert.Equal(t, domain.CheckUnchecked, report.Days[0].Parts[1].Status)
	assert.True(t, report.Passed())
}

func TestCheckAnswers_LoaderError(t *testing.T) {
	loadErr := errors.New("bad yaml")
	uc := NewCheckAnswers(fakeAnswers{err: loadErr}, NewSolveDay(fakeResolver{}, &fakeSource{}))

	_, err := uc.Execute(context.Background(), 0)
	require.ErrorIs(t, err, loadErr)
}
