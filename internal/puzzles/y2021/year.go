// Package y2021 holds the 2021 puzzle days.
package y2021

import (
	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/registry"
)

const Year = 2021

// Registry returns the constructors for every implemented 2021 day.
func Registry() *registry.Registry {
	return registry.MustNew(Year, map[int]domain.Constructor{
		1:  NewDay01,
		13: NewDay13,
	})
}
