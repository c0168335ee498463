package errors

import (
	"errors"
	"fmt"
)

func New(text string) error {
	return errors.New(text)
}

// Report whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Find the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WithOperation tags err with the operation that produced it. Plain errors
// are treated as filesystem failures of that operation.
func WithOperation(err error, operation string) error {
	if err == nil {
		return nil
	}

	var hideErr *HideError
	if As(err, &hideErr) {
		hideErr.Operation = operation
		return hideErr
	}

	return ErrIO(operation, err)
}
