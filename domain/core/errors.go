package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidParameter rejects inputs before any model is constructed:
	// probabilities outside [0,1], non-positive grids, negative edges.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvariantViolation signals that a constructed model failed its own
	// probability-sum or RTP-consistency check. This is an algorithm defect,
	// never a reportable result.
	ErrInvariantViolation = errors.New("model invariant violated")

	// ErrUnsupportedMechanic rejects a mechanic selector outside the closed
	// set of eight.
	ErrUnsupportedMechanic = errors.New("unsupported mechanic")
)

// Error constructors with context
func NewParameterError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidParameter, field, reason)
}

func NewInvariantError(check string, detail string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvariantViolation, check, detail)
}

func NewUnsupportedMechanicError(selector string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedMechanic, selector)
}

// Error checking helpers
func IsParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsInvariantError(err error) bool {
	return errors.Is(err, ErrInvariantViolation)
}

func IsUnsupportedMechanicError(err error) bool {
	return errors.Is(err, ErrUnsupportedMechanic)
}
