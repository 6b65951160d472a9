package errors

import (
	"fmt"
	"net/http"

	"marketsync/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same error code, so errors carrying
// details still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Store-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"store not found",
		"",
	)

	ErrStoreAlreadyExists = NewBaseError(
		http.StatusConflict,
		"STORE_ALREADY_EXISTS",
		"user already owns a store",
		"",
	)

	ErrStoreOwnership = NewBaseError(
		http.StatusForbidden,
		"STORE_OWNERSHIP_VIOLATION",
		"store belongs to another user",
		"",
	)

	// Advertisement-related errors
	ErrAdvertisementNotFound = NewBaseError(
		http.StatusNotFound,
		"ADVERTISEMENT_NOT_FOUND",
		"advertisement not found",
		"",
	)

	ErrAdvertisementArchived = NewBaseError(
		http.StatusConflict,
		"ADVERTISEMENT_ARCHIVED",
		"archived advertisements cannot be changed",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"unknown product category",
		"",
	)

	// Catalog-related errors
	ErrSuggestionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUGGESTION_NOT_FOUND",
		"suggestion not found",
		"",
	)

	ErrSuggestionAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"SUGGESTION_ALREADY_REVIEWED",
		"suggestion was already promoted or rejected",
		"",
	)

	ErrInvalidSuggestionStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SUGGESTION_STATUS",
		"invalid suggestion status",
		"",
	)

	ErrCanonicalProductExists = NewBaseError(
		http.StatusConflict,
		"CANONICAL_PRODUCT_EXISTS",
		"a catalog product with this name already exists",
		"",
	)

	// AI collaborator errors
	ErrAIUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"AI_UNAVAILABLE",
		"product assistant is unavailable, try again later",
		"",
	)

	ErrAINoResult = NewBaseError(
		http.StatusUnprocessableEntity,
		"AI_NO_RESULT",
		"no product could be identified",
		"",
	)

	// Auth-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"sign in required",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"invalid input",
		"",
	)
)

// StoreUnavailableError is a connectivity failure of the document store. The
// UI shows it as a retryable banner.
type StoreUnavailableError struct {
	op  string
	err error
}

// NewStoreUnavailableError wraps a document store failure of operation op
func NewStoreUnavailableError(op string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{op: op, err: err}
}

// Error implements the error interface
func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("document store %s failed: %v", e.op, e.err)
}

// Unwrap returns the underlying store error
func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreUnavailableError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StoreUnavailableError) Message() string {
	return "data is temporarily unavailable, try again"
}

// Details returns the failed operation
func (e *StoreUnavailableError) Details() string {
	return e.op
}

// Retryable is always true for connectivity failures
func (e *StoreUnavailableError) Retryable() bool {
	return true
}

// DecodeError reports a stored document that does not match its entity.
type DecodeError struct {
	Collection string
	ID         string
	Field      string
	Reason     string
}

// NewDecodeError creates a decode error for one field of a document
func NewDecodeError(collection, id, field, reason string) *DecodeError {
	return &DecodeError{Collection: collection, ID: id, Field: field, Reason: reason}
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s/%s: %s", e.Collection, e.ID, e.Reason)
	}

	return fmt.Sprintf("decode %s/%s: field %q %s", e.Collection, e.ID, e.Field, e.Reason)
}

// HTTPCode returns the HTTP status code
func (e *DecodeError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DecodeError) ErrorCode() string {
	return "DOCUMENT_DECODE_FAILED"
}

// Message returns the user-friendly error message
func (e *DecodeError) Message() string {
	return "stored data is malformed"
}

// Details returns the offending document path
func (e *DecodeError) Details() string {
	return e.Collection + "/" + e.ID
}
