package y2021

import (
	"context"
	"iter"
	"strconv"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
)

// Windows yields the sums of consecutive windows of the given size, in order.
func Windows(depths []int, size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if size <= 0 {
			return
		}
		for i := 0; i+size <= len(depths); i++ {
			sum := 0
			for _, d := range depths[i : i+size] {
				sum += d
			}
			if !yield(sum) {
				return
			}
		}
	}
}

// Increases counts how often a window sum is larger than the previous one.
func Increases(depths []int, size int) int {
	n := 0
	first := true
	prev := 0
	for sum := range Windows(depths, size) {
		if !first && sum > prev {
			n++
		}
		prev, first = sum, false
	}
	return n
}

type day01 struct {
	depths []int
}

func NewDay01(in input.Input) (domain.Day, error) {
	depths, err := input.DecodeMany(in, "\n", input.Int)
	if err != nil {
		return nil, err
	}
	return day01{depths: depths}, nil
}

func (d day01) PartOne(context.Context) (string, error) {
	return strconv.Itoa(Increases(d.depths, 1)), nil
}

func (d day01) PartTwo(context.Context) (string, error) {
	return strconv.Itoa(Increases(d.depths, 3)), nil
}
