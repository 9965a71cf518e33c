// Package template fills {{name}} placeholders in workspace skeleton files.
package template

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/aalvaropc/aoc/internal/domain"
)

// placeholder matches {{ name }} and {{ name | fallback }}.
var placeholder = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// RenderString replaces placeholders with vars values. A placeholder without
// a value uses its fallback; every placeholder left without either is
// reported in a single error.
func RenderString(input string, vars map[string]string) (string, error) {
	var (
		missing []string
		bad     string
	)

	out := placeholder.ReplaceAllStringFunc(input, func(m string) string {
		expr := m[2 : len(m)-2]
		name, fallback, hasFallback := strings.Cut(expr, "|")
		name = strings.TrimSpace(name)
		if name == "" {
			bad = "empty template expression"
			return m
		}
		if v, ok := vars[name]; ok {
			return v
		}
		if hasFallback {
			return strings.TrimSpace(fallback)
		}
		if !slices.Contains(missing, name) {
			missing = append(missing, name)
		}
		return m
	})

	switch {
	case bad != "":
		return "", invalid(bad)
	case len(missing) > 0:
		sort.Strings(missing)
		return "", invalid(fmt.Sprintf("missing variable(s) %s", strings.Join(missing, ", ")))
	case strings.Contains(out, "{{"):
		return "", invalid("unclosed template expression")
	}
	return out, nil
}

func invalid(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
