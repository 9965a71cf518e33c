// Package puzzles wires every implemented year into one catalog.
package puzzles

import (
	"github.com/aalvaropc/aoc/internal/puzzles/y2015"
	"github.com/aalvaropc/aoc/internal/puzzles/y2019"
	"github.com/aalvaropc/aoc/internal/puzzles/y2021"
	"github.com/aalvaropc/aoc/internal/registry"
)

// Catalog returns the catalog of all built-in days.
func Catalog() *registry.Catalog {
	c, err := registry.NewCatalog(
		y2015.Registry(),
		y2019.Registry(),
		y2021.Registry(),
	)
	if err != nil {
		panic(err)
	}
	return c
}
