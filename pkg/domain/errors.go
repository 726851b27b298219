package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrNotFound is returned when a requested account or phone number does not resolve.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when credentials do not match
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorage is the only error a caller sees when the backing store fails mid-operation.
	ErrStorage = errors.New("storage failure")
)

// Ledger errors
var (
	// ErrInsufficientBalance is returned when a debit would take a balance below zero.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSelfTransfer is returned when the receiver of a transfer is the sender.
	ErrSelfTransfer = errors.New("cannot transfer to own account")
	// ErrAllocationExhausted is returned when no free account number was found within the attempt bound.
	ErrAllocationExhausted = errors.New("account number allocation exhausted")
	// ErrPhoneTaken is returned when registering a phone number that already has an account.
	ErrPhoneTaken = fmt.Errorf("phone number already registered: %w", ErrAlreadyExists)
	// ErrNumberTaken is returned when a concurrent registration claimed the allocated account number first.
	ErrNumberTaken = fmt.Errorf("account number already allocated: %w", ErrAlreadyExists)
)

// Validation errors. Each wraps ErrValidation.
var (
	ErrInvalidAmount     = fmt.Errorf("%w: amount out of range", ErrValidation)
	ErrInvalidPhone      = fmt.Errorf("%w: malformed phone number", ErrValidation)
	ErrInvalidName       = fmt.Errorf("%w: name must be 1-50 characters", ErrValidation)
	ErrInvalidCredential = fmt.Errorf("%w: credential is required", ErrValidation)
)

// IsDomainError reports whether err is one of the errors the engine is allowed
// to return verbatim to its callers.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrValidation,
		ErrUnauthorized,
		ErrStorage,
		ErrInsufficientBalance,
		ErrSelfTransfer,
		ErrAllocationExhausted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
