// Package y2015 holds the 2015 puzzle days.
package y2015

import (
	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/registry"
)

const Year = 2015

// Registry returns the constructors for every implemented 2015 day.
func Registry() *registry.Registry {
	return registry.MustNew(Year, map[int]domain.Constructor{
		2: NewDay02,
	})
}
