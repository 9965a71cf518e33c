package ports

import "github.com/aalvaropc/aoc/internal/domain"

// Resolver maps a puzzle day to its constructor.
type Resolver interface {
	Resolve(key domain.Key) (domain.Constructor, error)
	Keys() []domain.Key
}
