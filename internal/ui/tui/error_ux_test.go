package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aalvaropc/aoc/internal/domain"
)

func TestUserMessage(t *testing.T) {
	k := domain.Key{Year: 2021, Day: 13}

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"day not found", domain.DayNotFound("solve.resolve", k), "Day not registered"},
		{"malformed", domain.MalformedInput("solve.construct", k, errors.New("bad")), "Input for 2021/day13 could not be parsed"},
		{"unavailable", &domain.OpError{Op: "inputfs.load", Kind: domain.KindInputUnavailable, Key: k}, "Input missing for 2021/day13 (try `aoc fetch`)"},
		{"workspace", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}, "Workspace not found"},
		{"answers", &domain.OpError{Op: "answersfile.load", Kind: domain.KindNotFound}, "answers.yaml not found"},
		{"yaml line", &domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/ws/aoc.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at aoc.yaml line 3"},
		{"timeout", fmt.Errorf("solve: %w", context.DeadlineExceeded), "Timed out"},
		{"plain", errors.New("something"), "Unexpected error (see logs)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, userMessage(tc.err))
		})
	}
}

func TestClampString(t *testing.T) {
	assert.Equal(t, "", clampString("abc", 0))
	assert.Equal(t, "abc", clampString("abc", 3))
	assert.Equal(t, "ab…", clampString("abc", 2))
	assert.Equal(t, "éé…", clampString("ééé", 2))
}

func TestRenderResult_StageError(t *testing.T) {
	res := domain.Result{
		Key:   domain.Key{Year: 2021, Day: 26},
		Error: &domain.StageError{Kind: domain.KindDayNotFound, Message: "no such day"},
	}
	out := renderResult(DefaultTheme(), res, "")
	assert.Contains(t, out, "day_not_found")
	assert.Contains(t, out, "no such day")
	assert.NotContains(t, out, "Part one")
}

func TestRenderAnswer_MultiLine(t *testing.T) {
	out := renderAnswer(DefaultTheme(), "Part two", domain.Answer{Value: "#..\n.#.", DurationMS: 3})
	assert.Contains(t, out, "(3ms)")
	assert.Contains(t, out, "  #..\n")
	assert.Contains(t, out, "  .#.\n")
}
