package y2019

import (
	"context"
	"errors"
	"strconv"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
	"github.com/aalvaropc/aoc/internal/puzzles/intcode"
)

const gravityAssistTarget = 19690720

var errNoNounVerb = errors.New("no noun/verb pair produces the target output")

type day02 struct {
	program intcode.Program
}

func NewDay02(in input.Input) (domain.Day, error) {
	p, err := intcode.Parse(in)
	if err != nil {
		return nil, err
	}
	if len(p) < 3 {
		return nil, input.Errorf("intcode", in.Text(), "program too short for noun/verb")
	}
	return day02{program: p}, nil
}

// RunWith executes the program with address 1 and 2 patched and returns address 0.
func RunWith(ctx context.Context, p intcode.Program, noun, verb int) (int, error) {
	m := intcode.New(p)
	if err := m.Poke(1, noun); err != nil {
		return 0, err
	}
	if err := m.Poke(2, verb); err != nil {
		return 0, err
	}
	if err := m.Run(ctx); err != nil {
		return 0, err
	}
	return m.Peek(0)
}

func (d day02) PartOne(ctx context.Context) (string, error) {
	v, err := RunWith(ctx, d.program, 12, 2)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}

func (d day02) PartTwo(ctx context.Context) (string, error) {
	for noun := 0; noun <= 99; noun++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		for verb := 0; verb <= 99; verb++ {
			v, err := RunWith(ctx, d.program, noun, verb)
			if err != nil {
				// invalid pointers for this pair; try the next one
				continue
			}
			if v == gravityAssistTarget {
				return strconv.Itoa(100*noun + verb), nil
			}
		}
	}
	return "", errNoNounVerb
}
