package ports

import "github.com/aalvaropc/aoc/internal/domain"

type ExpectedAnswersLoader interface {
	LoadAnswers() (domain.ExpectedAnswers, error)
}
