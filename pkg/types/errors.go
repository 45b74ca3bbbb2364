package types

import (
	"errors"
	"fmt"
)

// ValidationError represents an error that occurs during validation.
type ValidationError struct {
	Message string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError with the given message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ContractError signals caller misuse of an API (a programmer error) rather
// than a runtime condition.
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string {
	return e.Message
}

// NewContractError creates a new ContractError with the given message.
func NewContractError(format string, args ...interface{}) *ContractError {
	return &ContractError{
		Message: fmt.Sprintf(format, args...),
	}
}

// IsContractError checks if an error is a ContractError.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

// NotFoundError indicates a named entity was not present where one was required.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// NewNotFoundError creates a new NotFoundError for the given kind and name.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
