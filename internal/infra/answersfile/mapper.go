package answersfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
)

// MapAnswers validates the DTO and converts it into domain.ExpectedAnswers.
func MapAnswers(path string, ya YAMLAnswers) (domain.ExpectedAnswers, error) {
	out := domain.ExpectedAnswers{}

	for yearKey, days := range ya {
		year, err := strconv.Atoi(strings.TrimSpace(yearKey))
		if err != nil || year < domain.FirstYear {
			return nil, invalidField(path, yearKey, "year must be a number >= "+strconv.Itoa(domain.FirstYear))
		}

		for dayKey, d := range days {
			field := yearKey + "." + dayKey
			day, err := strconv.Atoi(strings.TrimSpace(dayKey))
			if err != nil || !domain.ValidDay(day) {
				return nil, invalidField(path, field, fmt.Sprintf("day must be in %d..%d", domain.FirstDay, domain.LastDay))
			}

			exp := domain.Expected{
				PartOne: strings.TrimSpace(d.PartOne),
				PartTwo: strings.TrimSpace(d.PartTwo),
			}
			if exp == (domain.Expected{}) {
				continue
			}
			out[domain.Key{Year: year, Day: day}] = exp
		}
	}

	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "answersfile.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
