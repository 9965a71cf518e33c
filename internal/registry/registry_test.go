package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
)

type echoDay struct{ text string }

func (d echoDay) PartOne(context.Context) (string, error) { return d.text, nil }
func (d echoDay) PartTwo(context.Context) (string, error) { return d.text, nil }

func echo(in input.Input) (domain.Day, error) { return echoDay{text: in.Text()}, nil }

func TestNew_RejectsOutOfRangeDays(t *testing.T) {
	for _, day := range []int{0, 26, -1} {
		_, err := New(2021, map[int]domain.Constructor{day: echo})
		require.Error(t, err, "day %d", day)
		assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
	}
}

func TestNew_RejectsNilConstructor(t *testing.T) {
	_, err := New(2021, map[int]domain.Constructor{1: nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil constructor")
}

func TestNew_RejectsBadYear(t *testing.T) {
	_, err := New(0, nil)
	require.Error(t, err)
}

func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { MustNew(2021, map[int]domain.Constructor{30: echo}) })
}

func TestRegistry_DaysSortedAndCopied(t *testing.T) {
	r := MustNew(2019, map[int]domain.Constructor{6: echo, 1: echo, 4: echo})

	days := r.Days()
	assert.Equal(t, []int{1, 4, 6}, days)

	days[0] = 99
	assert.Equal(t, []int{1, 4, 6}, r.Days())
}

func TestRegistry_IgnoresLaterChangesToSourceMap(t *testing.T) {
	entries := map[int]domain.Constructor{1: echo}
	r := MustNew(2021, entries)

	entries[2] = echo
	_, ok := r.Lookup(2)
	assert.False(t, ok)
}

func TestCatalog_Resolve(t *testing.T) {
	c, err := NewCatalog(
		MustNew(2015, map[int]domain.Constructor{2: echo}),
		MustNew(2021, map[int]domain.Constructor{1: echo, 13: echo}),
	)
	require.NoError(t, err)

	ctor, err := c.Resolve(domain.Key{Year: 2021, Day: 13})
	require.NoError(t, err)

	day, err := ctor(input.New("x"))
	require.NoError(t, err)
	got, err := day.PartOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestCatalog_ResolveUnknown(t *testing.T) {
	c, err := NewCatalog(MustNew(2021, map[int]domain.Constructor{1: echo}))
	require.NoError(t, err)

	for _, key := range []domain.Key{{Year: 2021, Day: 2}, {Year: 2016, Day: 1}} {
		ctor, err := c.Resolve(key)
		assert.Nil(t, ctor)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDayNotFound))
		assert.True(t, domain.IsKind(err, domain.KindDayNotFound))
	}
}

func TestCatalog_RejectsDuplicateYear(t *testing.T) {
	_, err := NewCatalog(
		MustNew(2021, map[int]domain.Constructor{1: echo}),
		MustNew(2021, map[int]domain.Constructor{2: echo}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registered twice")
}

func TestCatalog_KeysOrdered(t *testing.T) {
	c, err := NewCatalog(
		MustNew(2021, map[int]domain.Constructor{13: echo, 1: echo}),
		MustNew(2015, map[int]domain.Constructor{2: echo}),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{2015, 2021}, c.Years())
	assert.Equal(t, []domain.Key{
		{Year: 2015, Day: 2},
		{Year: 2021, Day: 1},
		{Year: 2021, Day: 13},
	}, c.Keys())
}
