package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports a rejected input. The operation that returned it
// left the order untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientPaymentError reports a payment below the amount due. The
// checkout stays open for a retry.
type InsufficientPaymentError struct {
	Shortfall decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient payment: %s still owed", e.Shortfall.StringFixed(2))
}

// PersistenceError reports a failed receipt or log write. Checkout treats
// these as warnings, not failures.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
