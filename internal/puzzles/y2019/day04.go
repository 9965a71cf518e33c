package y2019

import (
	"context"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
)

// Range is an inclusive password search range.
type Range struct {
	Lo, Hi int
}

// ParseRange parses "lo-hi".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, input.Errorf("Range", s, "want lo-hi")
	}
	a, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, input.Errorf("Range", s, "lower bound: %v", err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, input.Errorf("Range", s, "upper bound: %v", err)
	}
	if a > b {
		return Range{}, input.Errorf("Range", s, "lower bound above upper bound")
	}
	return Range{Lo: a, Hi: b}, nil
}

// runs returns the lengths of consecutive equal-digit groups, or nil when the
// candidate is not a six digit number with non-decreasing digits.
func runs(candidate int) []int {
	s := strconv.Itoa(candidate)
	if len(s) != 6 {
		return nil
	}
	out := []int{1}
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] < s[i-1]:
			return nil
		case s[i] == s[i-1]:
			out[len(out)-1]++
		default:
			out = append(out, 1)
		}
	}
	return out
}

// ValidPassword applies the part one rules: a repeated adjacent digit anywhere.
func ValidPassword(candidate int) bool {
	for _, n := range runs(candidate) {
		if n >= 2 {
			return true
		}
	}
	return false
}

// StrictPassword applies the part two rules: at least one group of exactly two.
func StrictPassword(candidate int) bool {
	for _, n := range runs(candidate) {
		if n == 2 {
			return true
		}
	}
	return false
}

type day04 struct {
	r Range
}

func NewDay04(in input.Input) (domain.Day, error) {
	r, err := input.Decode(in, ParseRange)
	if err != nil {
		return nil, err
	}
	return day04{r: r}, nil
}

func (d day04) count(ctx context.Context, valid func(int) bool) (string, error) {
	n := 0
	for c := d.r.Lo; c <= d.r.Hi; c++ {
		if (c-d.r.Lo)%65536 == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		if valid(c) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

func (d day04) PartOne(ctx context.Context) (string, error) {
	return d.count(ctx, ValidPassword)
}

func (d day04) PartTwo(ctx context.Context) (string, error) {
	return d.count(ctx, StrictPassword)
}
