// Package apperrors defines the typed error taxonomy shared by all
// services. Usecases return these; only the handler layer maps them to
// HTTP status codes.
package apperrors

import (
	"errors"
	"net/http"
)

// Machine-readable error codes crossing the service boundary
const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeSelfTransfer        = "SELF_TRANSFER"
	CodeRecipientNotFound   = "RECIPIENT_NOT_FOUND"
	CodeInvalidState        = "INVALID_STATE"
	CodeNotOwner            = "NOT_OWNER"
	CodeRemoteCall          = "REMOTE_CALL_FAILED"
	CodePaymentFailed       = "PAYMENT_FAILED"
	CodeInternal            = "INTERNAL_ERROR"
)

// AppError carries a machine-readable code, a human-readable message and
// an optional wrapped cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without a cause
func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates an AppError wrapping a cause
func Wrap(code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Validation creates a caller's-fault input error
func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// NotFound creates an absent-entity error
func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

// Conflict creates a business-rule conflict error
func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

// RemoteCall creates an error for a failed or timed-out collaborator call
func RemoteCall(message string, err error) *AppError {
	return Wrap(CodeRemoteCall, message, err)
}

// Internal creates an unexpected-condition error
func Internal(message string, err error) *AppError {
	return Wrap(CodeInternal, message, err)
}

// CodeOf extracts the machine code from err, or CodeInternal if err is
// not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable message from err
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the HTTP status the handler layer should
// return. The mapping lives here so every service answers consistently.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation, CodeInsufficientBalance, CodeSelfTransfer,
		CodeRecipientNotFound, CodeInvalidState, CodePaymentFailed:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNotOwner:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeRemoteCall:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Is reports whether err carries the given code
func Is(err error, code string) bool {
	return CodeOf(err) == code
}
