package errors

import (
	"errors"
	"fmt"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// LengthMismatchError is returned when the order and status lists handed to
// the joiner cannot be paired one to one.
type LengthMismatchError struct {
	Orders   int
	Statuses int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d orders, %d statuses", e.Orders, e.Statuses)
}

func NewLengthMismatchError(orders, statuses int) *LengthMismatchError {
	return &LengthMismatchError{Orders: orders, Statuses: statuses}
}

func IsLengthMismatchError(err error) (*LengthMismatchError, bool) {
	var lm *LengthMismatchError
	if errors.As(err, &lm) {
		return lm, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
