package y2019

import (
	"context"
	"strconv"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
)

// Fuel is the fuel required to launch a module of the given mass.
func Fuel(mass int) int {
	return mass/3 - 2
}

// TotalFuel also accounts for the fuel needed by the fuel itself.
func TotalFuel(mass int) int {
	total := 0
	for f := Fuel(mass); f > 0; f = Fuel(f) {
		total += f
	}
	return total
}

type day01 struct {
	masses []int
}

func NewDay01(in input.Input) (domain.Day, error) {
	masses, err := input.DecodeMany(in, "\n", input.Int)
	if err != nil {
		return nil, err
	}
	return day01{masses: masses}, nil
}

func (d day01) PartOne(context.Context) (string, error) {
	sum := 0
	for _, m := range d.masses {
		sum += Fuel(m)
	}
	return strconv.Itoa(sum), nil
}

func (d day01) PartTwo(context.Context) (string, error) {
	sum := 0
	for _, m := range d.masses {
		sum += TotalFuel(m)
	}
	return strconv.Itoa(sum), nil
}
