// Package extract selects values out of saved run artifacts with JSONPath.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/aoc/internal/domain"
)

// Query evaluates expr against the JSON document doc and renders the match
// as a string. Scalars render bare; arrays and objects render as JSON.
func Query(doc []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", queryError(expr, fmt.Errorf("empty jsonpath expression"))
	}

	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return "", queryError(expr, fmt.Errorf("document is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(expr, v)
	if err != nil {
		return "", queryError(expr, err)
	}
	if isEmptyValue(val) {
		return "", &domain.OpError{
			Op:   "extract.query",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: no value found: %w", expr, domain.ErrNotFound),
		}
	}
	return toString(val)
}

// Apply runs several named queries. Failed queries are reported in errs and do
// not stop the others.
func Apply(doc []byte, rules map[string]string) (map[string]string, map[string]error) {
	out := make(map[string]string, len(rules))
	errs := map[string]error{}
	for name, expr := range rules {
		s, err := Query(doc, expr)
		if err != nil {
			errs[name] = err
			continue
		}
		out[name] = s
	}
	return out, errs
}

func queryError(expr string, err error) error {
	return &domain.OpError{
		Op:   "extract.query",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%q: %w", expr, err),
	}
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool, int, int64:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
