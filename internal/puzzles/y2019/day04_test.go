package y2019

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc/internal/input"
)

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword(111111))
	assert.False(t, ValidPassword(223450))
	assert.False(t, ValidPassword(123789))
	assert.False(t, ValidPassword(12345))
}

func TestStrictPassword(t *testing.T) {
	assert.True(t, StrictPassword(112233))
	assert.False(t, StrictPassword(123444))
	assert.True(t, StrictPassword(111122))
	assert.False(t, StrictPassword(111111))
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("152085-670283")
	require.NoError(t, err)
	assert.Equal(t, Range{Lo: 152085, Hi: 670283}, r)

	for _, s := range []string{"152085", "a-b", "10-5"} {
		_, err := ParseRange(s)
		assert.Error(t, err, s)
	}
}

func TestDay04(t *testing.T) {
	day, err := NewDay04(input.New("111110-111125\n"))
	require.NoError(t, err)

	// 111111..111119 and 111122..111125 are non-decreasing with repeats
	one, err := day.PartOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "13", one)

	// only 111122 has a group of exactly two
	two, err := day.PartTwo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", two)
}

func TestDay04_Malformed(t *testing.T) {
	_, err := NewDay04(input.New("nope"))
	require.Error(t, err)
}
