package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound         = errors.New("not found")
	ErrDayNotFound      = errors.New("day not found")
	ErrMalformedInput   = errors.New("malformed input")
	ErrInputUnavailable = errors.New("input unavailable")
	ErrInvalidConfig    = errors.New("invalid config")
	ErrExecution        = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindDayNotFound      ErrorKind = "day_not_found"
	KindMalformedInput   ErrorKind = "malformed_input"
	KindInputUnavailable ErrorKind = "input_unavailable"
	KindInvalidConfig    ErrorKind = "invalid_config"
	KindExecution        ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Key  Key    // Optional: the puzzle day involved
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Key != (Key{}) {
		base += fmt.Sprintf(" (day=%s)", e.Key)
	}
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// DayNotFound builds the error returned when no constructor is registered for key.
func DayNotFound(op string, key Key) error {
	return &OpError{
		Op:   op,
		Kind: KindDayNotFound,
		Key:  key,
		Err:  fmt.Errorf("no implementation for year %d day %d: %w", key.Year, key.Day, ErrDayNotFound),
	}
}

// MalformedInput builds the error returned when a Day cannot be constructed from its input.
func MalformedInput(op string, key Key, cause error) error {
	return &OpError{
		Op:   op,
		Kind: KindMalformedInput,
		Key:  key,
		Err:  errors.Join(ErrMalformedInput, cause),
	}
}
