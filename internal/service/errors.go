package service

import (
	"errors"
	"fmt"
)

var (
	// ErrForbidden is returned when a caller reads an order they do not own.
	ErrForbidden = errors.New("unauthorized access to this order")

	// ErrPaymentGateway is the only error the payment adapter exposes for a
	// provider failure; the provider detail stays in the logs.
	ErrPaymentGateway = errors.New("payment failed")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError marks caller mistakes that a retry will not fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError names the entity and id a lookup missed.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %v not found", e.Entity, e.ID)
}
