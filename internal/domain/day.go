package domain

import (
	"context"
	"fmt"

	"github.com/aalvaropc/aoc/internal/input"
)

const (
	FirstDay = 1
	LastDay  = 25
)

// Key identifies a single puzzle day.
type Key struct {
	Year int `json:"year"`
	Day  int `json:"day"`
}

func (k Key) String() string {
	return fmt.Sprintf("%d/day%02d", k.Year, k.Day)
}

// ValidDay reports whether d is inside the calendar range.
func ValidDay(d int) bool {
	return d >= FirstDay && d <= LastDay
}

// Day is one constructed puzzle. Implementations own only the data they
// decoded and must not mutate it from either part.
type Day interface {
	PartOne(ctx context.Context) (string, error)
	PartTwo(ctx context.Context) (string, error)
}

// Constructor builds a Day from its raw input. A non-nil error means the
// input could not be decoded; no partial Day is returned.
type Constructor func(in input.Input) (Day, error)

// Part selects one of the two answers of a Day.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

func (p Part) String() string {
	switch p {
	case PartOne:
		return "part_one"
	case PartTwo:
		return "part_two"
	default:
		return "part_unknown"
	}
}

// Solve dispatches to the requested part.
func Solve(ctx context.Context, d Day, p Part) (string, error) {
	switch p {
	case PartOne:
		return d.PartOne(ctx)
	case PartTwo:
		return d.PartTwo(ctx)
	default:
		return "", fmt.Errorf("unknown part %d", int(p))
	}
}
