package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Startup errors
	ErrDataLoad         = errors.New("dataset could not be loaded")
	ErrNoNumericColumns = errors.New("dataset has no numeric columns")

	// Recoverable errors
	ErrInsufficientData  = errors.New("insufficient data for analysis")
	ErrInvalidParameters = errors.New("invalid filter parameters")
	ErrColumnNotFound    = fmt.Errorf("%w: unknown column", ErrInvalidParameters)
)

// Error constructors with context
func NewDataLoadError(source string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDataLoad, source)
	}
	return fmt.Errorf("%w: %s: %v", ErrDataLoad, source, err)
}

func NewInsufficientDataError(view string, have, need int) error {
	return fmt.Errorf("%w: %s needs at least %d rows, have %d", ErrInsufficientData, view, need, have)
}

func NewParameterError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidParameters, field, reason)
}

// Error checking helpers
func IsFatalStartupError(err error) bool {
	return errors.Is(err, ErrDataLoad) || errors.Is(err, ErrNoNumericColumns)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsParameterError(err error) bool {
	return errors.Is(err, ErrInvalidParameters)
}
