package params

import (
	"errors"
	"fmt"
)

// Parameter errors.
var (
	// ErrInvalidValue is returned when a requested value fails validation.
	ErrInvalidValue = errors.New("invalid parameter value")

	// ErrDeviceApply is returned when the device rejects a committed batch.
	ErrDeviceApply = errors.New("device apply failed")

	// ErrInvalidConfig is returned by New and Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("parameters closed")

	// ErrUnsupportedStream is returned by the stream getters for stream
	// types that have no dimension or format.
	ErrUnsupportedStream = errors.New("unsupported stream type")
)

// ValueError describes one rejected attribute.
type ValueError struct {
	Key    string
	Value  string
	Reason string
}

// Error implements error.
func (e *ValueError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Key, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidValue.
func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// CycleError is returned by Update when one or more attributes were
// rejected. Accepted attributes of the same cycle stay staged.
type CycleError struct {
	// Failures lists every rejection in setter order.
	Failures []*ValueError
}

// Error reports the last failure of the cycle.
func (e *CycleError) Error() string {
	if len(e.Failures) == 0 {
		return ErrInvalidValue.Error()
	}
	return e.Failures[len(e.Failures)-1].Error()
}

// Unwrap returns every failure so errors.Is and errors.As see them all.
func (e *CycleError) Unwrap() []error {
	out := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = f
	}
	return out
}

// Keys returns the rejected keys in setter order.
func (e *CycleError) Keys() []string {
	out := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		out[i] = f.Key
	}
	return out
}
