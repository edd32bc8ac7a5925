package domain

import "fmt"

// ValidationKind classifies what a DataValidationError is complaining about
type ValidationKind string

const (
	MissingField ValidationKind = "missing_field"
	WrongType    ValidationKind = "wrong_type"
	InvalidEnum  ValidationKind = "invalid_enum"
)

// DataValidationError signals a malformed, missing, or invalid-enum field
// in an inbound payload. It maps to HTTP 400 at the delivery layer.
type DataValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

// NewMissingFieldError builds a validation error for an absent required field
func NewMissingFieldError(field string) *DataValidationError {
	return &DataValidationError{
		Kind:    MissingField,
		Field:   field,
		Message: fmt.Sprintf("Invalid Inventory: missing %s", field),
	}
}

// NewWrongTypeError builds a validation error for a type mismatch
func NewWrongTypeError(field, expected string) *DataValidationError {
	return &DataValidationError{
		Kind:    WrongType,
		Field:   field,
		Message: fmt.Sprintf("Invalid Inventory: %s must be %s", field, expected),
	}
}

// NewInvalidEnumError builds a validation error for an unknown enum label
func NewInvalidEnumError(field, value string) *DataValidationError {
	return &DataValidationError{
		Kind:    InvalidEnum,
		Field:   field,
		Message: fmt.Sprintf("Invalid Inventory: %q is not a valid %s", value, field),
	}
}

// NotFoundError signals that no inventory record exists for the id.
// It maps to HTTP 404 at the delivery layer.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Inventory with id '%d' was not found.", e.ID)
}

// ConflictError signals a restock action whose state precondition does not
// hold. It maps to HTTP 409 at the delivery layer.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
