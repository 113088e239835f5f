package domain

import "fmt"

// Error types for consistent error handling across the encoder.

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}

// ErrValidation indicates a validation error (bad request shape).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrUnauthorized indicates invalid credentials or token.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ErrFormatting indicates a numeric value does not fit the field width
// required by the active bank profile.
type ErrFormatting struct {
	Field string
	Value string
	Width int
}

func (e *ErrFormatting) Error() string {
	if e.Width > 0 {
		return fmt.Sprintf("formatting error on '%s': value %s does not fit %d digits", e.Field, e.Value, e.Width)
	}
	return fmt.Sprintf("formatting error on '%s': invalid value %s", e.Field, e.Value)
}

// StructuralMessage is the fixed message carried by every ErrStructural.
const StructuralMessage = "barcode generation failed: expected 44 digits; check all input data"

// ErrStructural indicates the assembled code is not a well-formed barcode.
type ErrStructural struct {
	Length int
	Reason string
}

func (e *ErrStructural) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (got %d, %s)", StructuralMessage, e.Length, e.Reason)
	}
	return fmt.Sprintf("%s (got %d)", StructuralMessage, e.Length)
}

// ErrInvalidInput indicates a checksum function received an empty or
// non-numeric string. It signals a caller bug, not bad user data.
type ErrInvalidInput struct {
	Input  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid check digit input %q: %s", e.Input, e.Reason)
}
