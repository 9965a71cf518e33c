package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/aoc/internal/domain"
)

// maxAnswerWidth keeps a runaway answer from blowing up the card.
const maxAnswerWidth = 120

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderResult(t Theme, res domain.Result, runID string) string {
	var b strings.Builder

	if res.Error != nil {
		b.WriteString(t.Error.Render("Error:"))
		b.WriteString("\n  - kind: ")
		b.WriteString(string(res.Error.Kind))
		b.WriteString("\n  - msg: ")
		b.WriteString(clampString(res.Error.Message, maxAnswerWidth))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(renderAnswer(t, "Part one", res.PartOne))
	b.WriteString(renderAnswer(t, "Part two", res.PartTwo))

	if !res.StartedAt.IsZero() && !res.EndedAt.IsZero() {
		fmt.Fprintf(&b, "\nTotal: %s\n", res.EndedAt.Sub(res.StartedAt))
	}
	if runID != "" {
		b.WriteString("Run ID: ")
		b.WriteString(runID)
		b.WriteString("\n")
	}
	return b.String()
}

func renderAnswer(t Theme, label string, a domain.Answer) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(": ")

	if a.Error != nil {
		b.WriteString(t.Error.Render("FAIL"))
		b.WriteString(" [")
		b.WriteString(string(a.Error.Kind))
		b.WriteString("] ")
		b.WriteString(clampString(a.Error.Message, maxAnswerWidth))
		b.WriteString("\n")
		return b.String()
	}

	if strings.Contains(a.Value, "\n") {
		fmt.Fprintf(&b, "(%dms)\n", a.DurationMS)
		for _, line := range strings.Split(a.Value, "\n") {
			b.WriteString(t.Grid.Render(clampString(line, maxAnswerWidth)))
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(t.OK.Render(clampString(a.Value, maxAnswerWidth)))
	fmt.Fprintf(&b, " (%dms)\n", a.DurationMS)
	return b.String()
}
