// Package y2019 holds the 2019 puzzle days.
package y2019

import (
	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/registry"
)

const Year = 2019

// Registry returns the constructors for every implemented 2019 day.
func Registry() *registry.Registry {
	return registry.MustNew(Year, map[int]domain.Constructor{
		1: NewDay01,
		2: NewDay02,
		4: NewDay04,
		6: NewDay06,
	})
}
