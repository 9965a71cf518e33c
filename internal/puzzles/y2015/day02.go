package y2015

import (
	"context"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
)

// Box is a present with three positive integer dimensions.
type Box struct {
	L, W, H int
}

// ParseBox parses "LxWxH".
func ParseBox(s string) (Box, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 3 {
		return Box{}, input.Errorf("Box", s, "want LxWxH")
	}
	var dims [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Box{}, input.Errorf("Box", s, "dimension %d: %v", i, err)
		}
		if n <= 0 {
			return Box{}, input.Errorf("Box", s, "dimension %d must be positive", i)
		}
		dims[i] = n
	}
	return Box{L: dims[0], W: dims[1], H: dims[2]}, nil
}

// Paper is the surface area plus the area of the smallest face.
func (b Box) Paper() int {
	lw, wh, hl := b.L*b.W, b.W*b.H, b.H*b.L
	return 2*(lw+wh+hl) + min(lw, wh, hl)
}

// Ribbon is the smallest face perimeter plus the volume.
func (b Box) Ribbon() int {
	perimeter := 2 * min(b.L+b.W, b.W+b.H, b.H+b.L)
	return perimeter + b.L*b.W*b.H
}

type day02 struct {
	boxes []Box
}

func NewDay02(in input.Input) (domain.Day, error) {
	boxes, err := input.DecodeMany(in, "\n", ParseBox)
	if err != nil {
		return nil, err
	}
	return day02{boxes: boxes}, nil
}

func (d day02) PartOne(context.Context) (string, error) {
	total := 0
	for _, b := range d.boxes {
		total += b.Paper()
	}
	return strconv.Itoa(total), nil
}

func (d day02) PartTwo(context.Context) (string, error) {
	total := 0
	for _, b := range d.boxes {
		total += b.Ribbon()
	}
	return strconv.Itoa(total), nil
}
