package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrCartInUse is returned when deleting a cart that still has sales records.
var ErrCartInUse = errors.New("cart is in use by sales records")

// ErrInventoryInStock is returned when deleting an inventory item whose quantity is still positive.
var ErrInventoryInStock = errors.New("inventory item still has stock")

// ErrWorkerInUse is returned when deleting a worker that still has payments or leaves.
var ErrWorkerInUse = errors.New("worker has payments or leaves")

// ErrInvalidTransition is returned when a leave is approved or rejected after it was already resolved.
var ErrInvalidTransition = errors.New("invalid leave status transition")

// ErrNotReady is returned while the entity store has not finished its initial load.
var ErrNotReady = errors.New("data is still loading")

// AppError carries an HTTP status code alongside a client-facing message.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
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

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

func NewGatewayTimeoutError(message string) *AppError {
	return NewAppError(http.StatusGatewayTimeout, message, nil)
}
