// Package input holds the raw text of a puzzle and the decode helpers days use
// to turn it into typed values.
//
// Decode is strict: the whole payload must parse. DecodeMany is lenient by
// default: chunks that fail to parse are dropped and the rest keep their order.
package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Input is the raw text payload for one puzzle day.
type Input struct {
	text string
}

// New wraps raw text. Windows line endings are normalised to "\n".
func New(text string) Input {
	return Input{text: strings.ReplaceAll(text, "\r\n", "\n")}
}

// Text returns the payload unchanged except for line-ending normalisation.
func (in Input) Text() string { return in.text }

// String implements fmt.Stringer.
func (in Input) String() string { return in.text }

// Empty reports whether the payload contains only whitespace.
func (in Input) Empty() bool { return strings.TrimSpace(in.text) == "" }

// Parser converts one chunk of text into a value.
type Parser[T any] func(s string) (T, error)

// ParseError is returned when a chunk of input cannot be parsed into Type.
type ParseError struct {
	Type  string
	Value string
	// Index is the position of the chunk within a DecodeMany split, or -1.
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	v := e.Value
	if len(v) > 40 {
		v = v[:40] + "…"
	}
	msg := fmt.Sprintf("input: invalid %s value %q", e.Type, v)
	if e.Index >= 0 {
		msg = fmt.Sprintf("input: element %d: invalid %s value %q", e.Index, e.Type, v)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf builds a ParseError for a value of type typ with a formatted cause.
func Errorf(typ, value, format string, args ...any) *ParseError {
	return &ParseError{Type: typ, Value: value, Index: -1, Err: fmt.Errorf(format, args...)}
}

// ElementPolicy decides what DecodeMany does with chunks that fail to parse.
type ElementPolicy int

const (
	// Drop silently skips bad chunks.
	Drop ElementPolicy = iota
	// Fail aborts the decode on the first bad chunk.
	Fail
)

type decodeOptions struct {
	policy    ElementPolicy
	typeName  string
	keepBlank bool
}

// Option configures DecodeMany.
type Option func(*decodeOptions)

// OnElementError sets the policy for chunks that fail to parse.
func OnElementError(p ElementPolicy) Option {
	return func(o *decodeOptions) { o.policy = p }
}

// Named sets the type name reported in ParseError.
func Named(name string) Option {
	return func(o *decodeOptions) { o.typeName = name }
}

// KeepBlank passes whitespace-only chunks to the parser instead of skipping them.
func KeepBlank() Option {
	return func(o *decodeOptions) { o.keepBlank = true }
}

// Decode parses the whole payload (trimmed) as a single value.
func Decode[T any](in Input, parse Parser[T]) (T, error) {
	var zero T
	s := strings.TrimSpace(in.text)
	v, err := parse(s)
	if err != nil {
		return zero, wrapParseError(err, typeName[T](""), s, -1)
	}
	return v, nil
}

// DecodeMany splits the payload on sep and parses every non-blank chunk.
func DecodeMany[T any](in Input, sep string, parse Parser[T], opts ...Option) ([]T, error) {
	o := decodeOptions{policy: Drop}
	for _, opt := range opts {
		opt(&o)
	}

	chunks := strings.Split(in.text, sep)
	out := make([]T, 0, len(chunks))
	for i, chunk := range chunks {
		s := strings.TrimSpace(chunk)
		if s == "" && !o.keepBlank {
			continue
		}
		v, err := parse(s)
		if err != nil {
			if o.policy == Fail {
				return nil, wrapParseError(err, typeName[T](o.typeName), s, i)
			}
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Lines returns the non-blank, trimmed lines of the payload.
func (in Input) Lines() []string {
	lines, _ := DecodeMany(in, "\n", String)
	return lines
}

// Sections splits the payload on blank lines.
func (in Input) Sections() []Input {
	raw := strings.Split(strings.TrimSpace(in.text), "\n\n")
	out := make([]Input, 0, len(raw))
	for _, r := range raw {
		out = append(out, Input{text: r})
	}
	return out
}

// String is the identity parser.
func String(s string) (string, error) { return s, nil }

// Int parses a base-10 integer.
func Int(s string) (int, error) { return strconv.Atoi(s) }

// Ints decodes sep-separated integers, dropping anything that is not a number.
func Ints(in Input, sep string) []int {
	v, _ := DecodeMany(in, sep, Int)
	return v
}

func wrapParseError(err error, name, value string, index int) error {
	if pe, ok := err.(*ParseError); ok {
		cp := *pe
		if cp.Type == "" {
			cp.Type = name
		}
		if cp.Index < 0 {
			cp.Index = index
		}
		return &cp
	}
	return &ParseError{Type: name, Value: value, Index: index, Err: err}
}

func typeName[T any](override string) string {
	if override != "" {
		return override
	}
	var zero T
	return fmt.Sprintf("%T", zero)
}
