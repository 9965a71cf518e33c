package y2019

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/input"
)

const (
	objectYou   = "YOU"
	objectSanta = "SAN"
)

// Orbit is one "A)B" relation: B orbits A.
type Orbit struct {
	Center, Satellite string
}

// ParseOrbit parses "A)B".
func ParseOrbit(s string) (Orbit, error) {
	center, sat, ok := strings.Cut(s, ")")
	center, sat = strings.TrimSpace(center), strings.TrimSpace(sat)
	if !ok || center == "" || sat == "" {
		return Orbit{}, input.Errorf("Orbit", s, "want CENTER)SATELLITE")
	}
	return Orbit{Center: center, Satellite: sat}, nil
}

// OrbitMap records, for every object, the object it directly orbits.
type OrbitMap struct {
	parent map[string]string
}

// NewOrbitMap builds the map; an object orbiting two centers is rejected.
func NewOrbitMap(orbits []Orbit) (OrbitMap, error) {
	parent := make(map[string]string, len(orbits))
	for _, o := range orbits {
		if prev, dup := parent[o.Satellite]; dup && prev != o.Center {
			return OrbitMap{}, fmt.Errorf("object %s orbits both %s and %s", o.Satellite, prev, o.Center)
		}
		parent[o.Satellite] = o.Center
	}
	return OrbitMap{parent: parent}, nil
}

// Ancestors returns the chain of centers from obj's direct center outwards.
func (m OrbitMap) Ancestors(obj string) []string {
	var out []string
	seen := map[string]bool{obj: true}
	for cur, ok := m.parent[obj]; ok; cur, ok = m.parent[cur] {
		if seen[cur] {
			break
		}
		seen[cur] = true
		out = append(out, cur)
	}
	return out
}

// TotalOrbits counts direct and indirect orbits.
func (m OrbitMap) TotalOrbits() int {
	depth := make(map[string]int, len(m.parent))
	var walk func(string, map[string]bool) int
	walk = func(obj string, visiting map[string]bool) int {
		if d, ok := depth[obj]; ok {
			return d
		}
		center, ok := m.parent[obj]
		if !ok || visiting[obj] {
			return 0
		}
		visiting[obj] = true
		d := walk(center, visiting) + 1
		delete(visiting, obj)
		depth[obj] = d
		return d
	}

	total := 0
	for obj := range m.parent {
		total += walk(obj, map[string]bool{})
	}
	return total
}

// Transfers is the number of orbital transfers needed to move from the object
// a orbits to the object b orbits.
func (m OrbitMap) Transfers(a, b string) (int, error) {
	pa, pb := m.Ancestors(a), m.Ancestors(b)
	if len(pa) == 0 || len(pb) == 0 {
		return 0, fmt.Errorf("%s and %s must both orbit something", a, b)
	}
	dist := make(map[string]int, len(pa))
	for i, obj := range pa {
		dist[obj] = i
	}
	for j, obj := range pb {
		if i, ok := dist[obj]; ok {
			return i + j, nil
		}
	}
	return 0, fmt.Errorf("%s and %s share no common center", a, b)
}

type day06 struct {
	orbits OrbitMap
}

func NewDay06(in input.Input) (domain.Day, error) {
	list, err := input.DecodeMany(in, "\n", ParseOrbit)
	if err != nil {
		return nil, err
	}
	m, err := NewOrbitMap(list)
	if err != nil {
		return nil, err
	}
	return day06{orbits: m}, nil
}

func (d day06) PartOne(context.Context) (string, error) {
	return strconv.Itoa(d.orbits.TotalOrbits()), nil
}

func (d day06) PartTwo(context.Context) (string, error) {
	n, err := d.orbits.Transfers(objectYou, objectSanta)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
