package autoresolve

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidInput is wrapped by InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrContractViolation is wrapped by ContractViolationError. It signals that the
	// classifier and builder marker tables disagree and is never user-recoverable.
	ErrContractViolation = errors.New("marker contract violation")
)

// InvalidInputError is returned when a required collaborator or collection is absent.
// Nothing is registered when it is returned.
type InvalidInputError struct {
	Argument string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s cannot be nil", e.Argument)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// ContractViolationError is returned when a matched marker has no lifetime mapping.
type ContractViolationError struct {
	Type   reflect.Type
	Marker Marker
}

func (e *ContractViolationError) Error() string {
	typeStr := "unknown"
	if e.Type != nil {
		typeStr = e.Type.String()
	}
	return fmt.Sprintf("marker %v on type %s has no lifetime mapping", e.Marker, typeStr)
}

func (e *ContractViolationError) Unwrap() error {
	return ErrContractViolation
}

// DiscoveryError is returned when a Source fails to produce its candidate types.
type DiscoveryError struct {
	Cause error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover candidate types: %v", e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}

// RegistrationError is returned when the container rejects an entry.
type RegistrationError struct {
	Entry Entry
	Cause error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register %s: %v", e.Entry, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *RegistrationError) Unwrap() error {
	return e.Cause
}
