package usecase

import (
	"sort"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/ports"
)

type ListDays struct {
	resolver ports.Resolver
}

func NewListDays(r ports.Resolver) *ListDays {
	return &ListDays{resolver: r}
}

// Execute lists registered days ordered by year then day. A non-zero year
// restricts the list to that year.
func (uc *ListDays) Execute(year int) []domain.Key {
	var out []domain.Key
	for _, k := range uc.resolver.Keys() {
		if year == 0 || k.Year == year {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}
