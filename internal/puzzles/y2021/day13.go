package y2021

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
	"github.com/aalvaropc/aoc/internal/puzzles/ocr"
)

// Point is a dot on the transparent paper.
type Point struct {
	X, Y int
}

// ParsePoint parses "x,y" with non-negative coordinates.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, input.Errorf("Point", s, "want x,y")
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, input.Errorf("Point", s, "x: %v", err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, input.Errorf("Point", s, "y: %v", err)
	}
	if x < 0 || y < 0 {
		return Point{}, input.Errorf("Point", s, "coordinates must be non-negative")
	}
	return Point{X: x, Y: y}, nil
}

// Axis is the coordinate a fold acts on.
type Axis byte

const (
	AxisX Axis = 'x'
	AxisY Axis = 'y'
)

// Fold reflects everything beyond Line onto the other side.
type Fold struct {
	Axis Axis
	Line int
}

// ParseFold parses "fold along x=5".
func ParseFold(s string) (Fold, error) {
	rest, ok := strings.CutPrefix(s, "fold along ")
	if !ok || len(rest) < 3 || rest[1] != '=' {
		return Fold{}, input.Errorf("Fold", s, "want 'fold along x=N' or 'fold along y=N'")
	}
	axis := Axis(rest[0])
	if axis != AxisX && axis != AxisY {
		return Fold{}, input.Errorf("Fold", s, "unknown axis %q", rest[0])
	}
	n, err := strconv.Atoi(rest[2:])
	if err != nil || n < 0 {
		return Fold{}, input.Errorf("Fold", s, "bad fold line")
	}
	return Fold{Axis: axis, Line: n}, nil
}

// Paper is an immutable set of points.
type Paper map[Point]struct{}

// NewPaper builds a set from points; duplicates collapse.
func NewPaper(points []Point) Paper {
	p := make(Paper, len(points))
	for _, pt := range points {
		p[pt] = struct{}{}
	}
	return p
}

// Fold returns a new Paper with f applied. Only the coordinate on f's axis
// changes, and only for points beyond the fold line.
func (p Paper) Fold(f Fold) Paper {
	out := make(Paper, len(p))
	for pt := range p {
		switch {
		case f.Axis == AxisX && pt.X > f.Line:
			pt.X = 2*f.Line - pt.X
		case f.Axis == AxisY && pt.Y > f.Line:
			pt.Y = 2*f.Line - pt.Y
		}
		out[pt] = struct{}{}
	}
	return out
}

// Points returns the points sorted by row then column.
func (p Paper) Points() []Point {
	out := make([]Point, 0, len(p))
	for pt := range p {
		out = append(out, pt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Render draws the paper from the origin to the furthest point. When a fold
// pushed points past the origin the drawing starts at the smallest coordinate
// instead, so every point is drawn.
func (p Paper) Render() []string {
	minX, minY := 0, 0
	maxX, maxY := -1, -1
	for pt := range p {
		minX, minY = min(minX, pt.X), min(minY, pt.Y)
		maxX, maxY = max(maxX, pt.X), max(maxY, pt.Y)
	}
	w, h := maxX-minX+1, maxY-minY+1
	if len(p) == 0 {
		w, h = 0, 0
	}

	grid := make([][]byte, h)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(string(ocr.Dark), w))
	}
	for pt := range p {
		grid[pt.Y-minY][pt.X-minX] = ocr.Lit
	}
	rows := make([]string, h)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}

type day13 struct {
	paper Paper
	folds []Fold
}

func NewDay13(in input.Input) (domain.Day, error) {
	sections := in.Sections()
	if len(sections) != 2 {
		return nil, input.Errorf("Manual", in.Text(), "want points and folds separated by a blank line")
	}
	points, err := input.DecodeMany(sections[0], "\n", ParsePoint)
	if err != nil {
		return nil, err
	}
	folds, err := input.DecodeMany(sections[1], "\n", ParseFold)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 || len(folds) == 0 {
		return nil, input.Errorf("Manual", in.Text(), "need at least one point and one fold")
	}
	return day13{paper: NewPaper(points), folds: folds}, nil
}

func (d day13) PartOne(context.Context) (string, error) {
	return strconv.Itoa(len(d.paper.Fold(d.folds[0]))), nil
}

// PartTwo returns the recognised letters, or the drawing itself when the
// letters cannot be read.
func (d day13) PartTwo(ctx context.Context) (string, error) {
	p := d.paper
	for _, f := range d.folds {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p = p.Fold(f)
	}
	rows := p.Render()
	if word, ok := ocr.Recognize(rows); ok {
		return word, nil
	}
	return strings.Join(rows, "\n"), nil
}
