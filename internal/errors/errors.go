// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInvalidDuration   = errors.New("duration must be at least 1")
	ErrInvalidCost       = errors.New("cost must not be negative")
	ErrTimeBeforeCursor  = errors.New("launch time is before the current time")
	ErrCapacityReached   = errors.New("show is at capacity")
	ErrVendorUnsupported = errors.New("show does not track vendors")
	ErrShowNotFound      = errors.New("show not found")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrScenarioInvalid   = errors.New("invalid scenario")
)

// LaunchError describes why a show refused a firework.
type LaunchError struct {
	Show   string
	Time   int
	Reason string
	Err    error
}

func (e *LaunchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("launch rejected [%s] at t=%d: %s: %v", e.Show, e.Time, e.Reason, e.Err)
	}
	return fmt.Sprintf("launch rejected [%s] at t=%d: %s", e.Show, e.Time, e.Reason)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NewLaunchError creates a new LaunchError.
func NewLaunchError(show string, time int, reason string, err error) *LaunchError {
	return &LaunchError{
		Show:   show,
		Time:   time,
		Reason: reason,
		Err:    err,
	}
}

// ShowError represents a failure to dispatch an operation to a town's show.
type ShowError struct {
	Index     int
	Operation string
	Err       error
}

func (e *ShowError) Error() string {
	return fmt.Sprintf("show error [%d] %s: %v", e.Index, e.Operation, e.Err)
}

func (e *ShowError) Unwrap() error {
	return e.Err
}

// NewShowError creates a new ShowError.
func NewShowError(index int, operation string, err error) *ShowError {
	return &ShowError{
		Index:     index,
		Operation: operation,
		Err:       err,
	}
}

// ValidationError represents a validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Join joins validation failures into a single error wrapping target.
func Join(target error, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", target, errors.Join(errs...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
