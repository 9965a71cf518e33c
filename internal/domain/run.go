package domain

import (
	"context"
	"errors"
	"time"
)

// RunErrorKind is a high-level classification of part failures.
type RunErrorKind string

const (
	RunErrorUnknown  RunErrorKind = "unknown"
	RunErrorTimeout  RunErrorKind = "timeout"
	RunErrorCanceled RunErrorKind = "canceled"
	RunErrorFailed   RunErrorKind = "failed"
)

// RunError represents a structured error produced while computing an answer.
type RunError struct {
	Kind    RunErrorKind `json:"kind"`
	Message string       `json:"message"`
}

// NewRunError converts err into a RunError; nil stays nil.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{Kind: ClassifyRunError(err), Message: err.Error()}
}

// ClassifyRunError maps an error returned by a part into a RunErrorKind.
func ClassifyRunError(err error) RunErrorKind {
	switch {
	case err == nil:
		return RunErrorUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return RunErrorTimeout
	case errors.Is(err, context.Canceled):
		return RunErrorCanceled
	default:
		return RunErrorFailed
	}
}

// Answer is the outcome of one part.
type Answer struct {
	Value      string    `json:"value"`
	DurationMS int64     `json:"duration_ms"`
	Error      *RunError `json:"error,omitempty"`
}

// OK reports whether the part produced a value.
func (a Answer) OK() bool { return a.Error == nil }

// Result represents the outcome of solving a single day.
type Result struct {
	Key Key `json:"key"`

	PartOne Answer `json:"part_one"`
	PartTwo Answer `json:"part_two"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	// Error is set when the day never reached the Constructed stage.
	Error *StageError `json:"error,omitempty"`
}

// Failed reports whether any stage or part of the result failed.
func (r Result) Failed() bool {
	return r.Error != nil || !r.PartOne.OK() || !r.PartTwo.OK()
}

// Answer returns the answer for the given part.
func (r Result) Answer(p Part) Answer {
	if p == PartTwo {
		return r.PartTwo
	}
	return r.PartOne
}

// StageError records a failure before both parts could run.
type StageError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewStageError converts a resolution/construction error into a StageError.
func NewStageError(err error) *StageError {
	if err == nil {
		return nil
	}
	kind := KindOf(err)
	if kind == "" {
		kind = KindExecution
	}
	return &StageError{Kind: kind, Message: err.Error()}
}

// RunArtifact represents a persisted batch of results.
type RunArtifact struct {
	ID string `json:"id"`

	Year int    `json:"year"`
	Name string `json:"name"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Results []Result `json:"results"`
}

// RunRef is an index entry for a saved run.
type RunRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Name      string    `json:"name"`
	Days      []Key     `json:"days"`
	Failed    int       `json:"failed"`
	StartedAt time.Time `json:"started_at"`
}
