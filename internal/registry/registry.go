// Package registry maps (year, day) pairs to Day constructors.
//
// Registries are built once and never mutated afterwards, so they are safe to
// share between goroutines without locking.
package registry

import (
	"fmt"
	"sort"

	"github.com/aalvaropc/aoc/internal/domain"
)

// Registry is the immutable table of constructors for one year.
type Registry struct {
	year  int
	days  map[int]domain.Constructor
	order []int
}

// New builds a Registry for year. Day numbers must be within 1..25 and
// constructors must be non-nil.
func New(year int, entries map[int]domain.Constructor) (*Registry, error) {
	if year <= 0 {
		return nil, invalid(year, fmt.Errorf("year must be positive, got %d", year))
	}

	days := make(map[int]domain.Constructor, len(entries))
	order := make([]int, 0, len(entries))
	for day, ctor := range entries {
		if !domain.ValidDay(day) {
			return nil, invalid(year, fmt.Errorf("day %d outside %d..%d", day, domain.FirstDay, domain.LastDay))
		}
		if ctor == nil {
			return nil, invalid(year, fmt.Errorf("day %d has nil constructor", day))
		}
		days[day] = ctor
		order = append(order, day)
	}
	sort.Ints(order)

	return &Registry{year: year, days: days, order: order}, nil
}

// MustNew is New for package-level tables; it panics on invalid entries.
func MustNew(year int, entries map[int]domain.Constructor) *Registry {
	r, err := New(year, entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Year is the puzzle year every day in r belongs to.
func (r *Registry) Year() int { return r.year }

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the constructor for day, if registered.
func (r *Registry) Lookup(day int) (domain.Constructor, bool) {
	ctor, ok := r.days[day]
	return ctor, ok
}

// Catalog is the immutable set of registries for all years.
type Catalog struct {
	years map[int]*Registry
	order []int
}

// NewCatalog combines registries; two registries for the same year are rejected.
func NewCatalog(regs ...*Registry) (*Catalog, error) {
	c := &Catalog{years: make(map[int]*Registry, len(regs))}
	for _, r := range regs {
		if r == nil {
			continue
		}
		if _, dup := c.years[r.year]; dup {
			return nil, invalid(r.year, fmt.Errorf("year %d registered twice", r.year))
		}
		c.years[r.year] = r
		c.order = append(c.order, r.year)
	}
	sort.Ints(c.order)
	return c, nil
}

// Years returns the years with a registry, ascending.
func (c *Catalog) Years() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

// Year returns the registry for year, if any.
func (c *Catalog) Year(year int) (*Registry, bool) {
	r, ok := c.years[year]
	return r, ok
}

// Resolve finds the constructor for key or fails with a day-not-found error.
func (c *Catalog) Resolve(key domain.Key) (domain.Constructor, error) {
	r, ok := c.years[key.Year]
	if !ok {
		return nil, domain.DayNotFound("registry.resolve", key)
	}
	ctor, ok := r.Lookup(key.Day)
	if !ok {
		return nil, domain.DayNotFound("registry.resolve", key)
	}
	return ctor, nil
}

// Keys lists every registered day across all years, ordered by year then day.
func (c *Catalog) Keys() []domain.Key {
	var out []domain.Key
	for _, y := range c.order {
		for _, d := range c.years[y].order {
			out = append(out, domain.Key{Year: y, Day: d})
		}
	}
	return out
}

func invalid(year int, err error) error {
	return &domain.OpError{
		Op:   "registry.new",
		Kind: domain.KindInvalidConfig,
		Key:  domain.Key{Year: year},
		Err:  err,
	}
}
