package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeItemNotFound    = "ITEM_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeCartNotCleared  = "CART_NOT_CLEARED"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeStorage         = "STORAGE_ERROR"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrItemNotFound  = NewDomainError(ErrCodeItemNotFound, "Catalogue item not found")
	ErrOrderNotFound = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)

// ValidationError reports a missing or invalid field in caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for the named field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError reports a failed read or write of a persisted collection.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
