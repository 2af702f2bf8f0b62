package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks text whose numeric payload is not a digit sequence.
	ErrParse = errors.New("parse error")
	// ErrValueExceedsMax marks a value above the configured maximum. Fields
	// roll back silently; only SetValue callers that ask for validation see it.
	ErrValueExceedsMax = errors.New("value exceeds max")
)

// ParseError carries the raw input and the payload left after stripping.
type ParseError struct {
	Input   string
	Payload string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q (payload %q): %v", e.Input, e.Payload, e.Err)
	}
	return fmt.Sprintf("cannot parse %q (payload %q)", e.Input, e.Payload)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// ExceedsMaxError reports a value above the configured maximum.
type ExceedsMaxError struct {
	Value float64
	Max   float64
}

func (e *ExceedsMaxError) Error() string {
	return fmt.Sprintf("value %v exceeds max %v", e.Value, e.Max)
}

func (e *ExceedsMaxError) Unwrap() error { return ErrValueExceedsMax }
