package service

import (
	"errors"
	"fmt"
)

// ErrReadingRejected is matched by every *ValidationError.
var ErrReadingRejected = errors.New("reading rejected")

// ValidationError rejects a whole batch because of one reading.
type ValidationError struct {
	Field   string
	Value   int32
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s=%d", e.Message, e.Field, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrReadingRejected
}

// MissingTimeError reports a reading without a usable timestamp.
type MissingTimeError struct {
	Index int
}

func (e *MissingTimeError) Error() string {
	return fmt.Sprintf("readings[%d]: %s is required", e.Index, ReadingTimeField)
}

// InternalError wraps an unexpected failure while persisting a batch.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("add reading batch: %v", e.Cause)
}

func (e *InternalError) Unwrap() error { return e.Cause }
