package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
// Resources owned by another account are reported the same way.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// ErrPersistence indicates the store rejected or could not complete a read or write.
var ErrPersistence = errors.New("persistence failure")

// Invoice specific validation kinds.
var (
	ErrInvalidLineItem    = errors.New("invalid line item")
	ErrInvalidTaxRate     = errors.New("invalid tax rate")
	ErrEmptyInvoiceNumber = errors.New("invoice number is required")
	ErrEmptyClientName    = errors.New("client name is required")
	ErrInvalidDate        = errors.New("date is missing or not in YYYY-MM-DD form")
	ErrInvalidStatus      = errors.New("invalid invoice status")
	ErrRenderFailed       = errors.New("document rendering failed")
)

// AppError carries an HTTP-ish status code and message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause so errors.Is/As keep working through AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError. A 5xx code without a cause wraps ErrInternal.
func NewAppError(code int, message string, err error) *AppError {
	if err == nil && code >= http.StatusInternalServerError {
		err = ErrInternal
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// NewPersistenceError wraps a driver error so that errors.Is(err, ErrPersistence) holds.
func NewPersistenceError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: errors.Join(ErrPersistence, err)}
}

// NewNotFoundError creates a 404 AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError creates a 409 AppError wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// FieldError names one offending input field and the kind of failure.
type FieldError struct {
	Field string
	Err   error
}

func (f FieldError) Error() string {
	return f.Field + ": " + f.Err.Error()
}

// ValidationError lists every offending field of a request, not just the first one.
type ValidationError struct {
	Fields []FieldError
}

// Add records a failure for field.
func (v *ValidationError) Add(field string, err error) {
	v.Fields = append(v.Fields, FieldError{Field: field, Err: err})
}

// HasErrors reports whether any field failed.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.Fields) > 0
}

// OrNil returns v as an error when it holds failures, nil otherwise.
func (v *ValidationError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is match ErrValidation as well as every field's kind.
func (v *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(v.Fields)+1)
	errs = append(errs, ErrValidation)
	for _, f := range v.Fields {
		errs = append(errs, f.Err)
	}
	return errs
}

// NewValidationFailedError builds a ValidationError holding a single field failure.
func NewValidationFailedError(field string, err error) *ValidationError {
	v := &ValidationError{}
	v.Add(field, err)
	return v
}
