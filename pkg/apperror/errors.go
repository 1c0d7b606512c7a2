package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Code extracts the error code from err, or SYS_001 for unstructured errors.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "SYS_001"
}

// ---- Wallet Operations (WAL) ----

func ErrUserNotFound() *AppError {
	return New("USER_NOT_FOUND", "User account not found", http.StatusNotFound)
}

func ErrInsufficientFunds() *AppError {
	return New("INSUFFICIENT_FUNDS", "Insufficient real and bonus balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
}

// Validation creates a request validation error.
func Validation(message string) *AppError {
	return New("VALIDATION_ERROR", message, http.StatusBadRequest)
}

// ---- Payment Processing (PAY) ----

func ErrPaymentRejected(reason string) *AppError {
	return New("PAYMENT_REJECTED", fmt.Sprintf("Payment rejected: %s", reason), http.StatusUnprocessableEntity)
}

func ErrAllProvidersFailed() *AppError {
	return New("ALL_PAYMENT_PROVIDERS_FAILED", "All payment providers exhausted their retry budget", http.StatusBadGateway)
}

func ErrUnknownProvider(name string) *AppError {
	return New("UNKNOWN_PROVIDER", fmt.Sprintf("No client configured for provider %q", name), http.StatusInternalServerError)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStorageError(err error) *AppError {
	return Wrap("SYS_002", "Account storage failure", http.StatusInternalServerError, err)
}
