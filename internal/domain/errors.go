package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrParse is returned when a birth date or time cannot be parsed.
	// It is usually carried by a *ParseError with field-level detail.
	ErrParse = errors.New("parse error")

	// ErrComputation is returned when a chart handed to an analysis step is
	// structurally incomplete. It is usually carried by a *ComputationError.
	ErrComputation = errors.New("computation error")

	// ErrInvalidPair is returned when a stem and branch do not form one of
	// the sixty valid cycle pairs.
	ErrInvalidPair = errors.New("invalid sexagenary pair")
)

// ParseError describes a malformed birth date or time component.
type ParseError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

// NewParseError creates a ParseError for the given input field.
func NewParseError(field, value, reason string, cause error) *ParseError {
	return &ParseError{Field: field, Value: value, Reason: reason, Err: cause}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is reports ErrParse as the category of every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ComputationError describes a FourPillars value that cannot be analyzed.
type ComputationError struct {
	Position Position
	Reason   string
}

// NewComputationError creates a ComputationError for the given pillar slot.
func NewComputationError(pos Position, reason string) *ComputationError {
	return &ComputationError{Position: pos, Reason: reason}
}

func (e *ComputationError) Error() string {
	if e.Position.Valid() {
		return fmt.Sprintf("computation error: %s pillar: %s", e.Position, e.Reason)
	}
	return "computation error: " + e.Reason
}

// Is reports ErrComputation as the category of every ComputationError.
func (e *ComputationError) Is(target error) bool {
	return target == ErrComputation
}
