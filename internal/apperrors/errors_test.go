package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesEveryFieldKind(t *testing.T) {
	v := &ValidationError{}
	v.Add("invoiceNumber", ErrEmptyInvoiceNumber)
	v.Add("items[1].rate", ErrInvalidLineItem)

	err := fmt.Errorf("create invoice: %w", v.OrNil())

	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(err, ErrEmptyInvoiceNumber))
	assert.True(t, errors.Is(err, ErrInvalidLineItem))
	assert.False(t, errors.Is(err, ErrEmptyClientName))
	assert.Contains(t, err.Error(), "invoiceNumber")
	assert.Contains(t, err.Error(), "items[1].rate")

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestValidationError_OrNilWhenEmpty(t *testing.T) {
	v := &ValidationError{}
	assert.NoError(t, v.OrNil())
	assert.False(t, v.HasErrors())
}

func TestAppError_Unwrap(t *testing.T) {
	driverErr := errors.New("connection reset")

	assert.ErrorIs(t, NewNotFoundError("invoice x"), ErrNotFound)
	assert.ErrorIs(t, NewConflictError("user y"), ErrDuplicate)

	persistErr := NewPersistenceError("failed to insert invoice", driverErr)
	assert.ErrorIs(t, persistErr, ErrPersistence)
	assert.ErrorIs(t, persistErr, driverErr)

	assert.ErrorIs(t, NewAppError(500, "boom", nil), ErrInternal)
	assert.Equal(t, "bad token", NewAppError(400, "bad token", nil).Error())
}
