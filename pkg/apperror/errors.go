package apperror

import (
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

// ---- Validation (VAL) ----

func ErrInvalidAmount(detail string) *AppError {
	return New("VAL_001", fmt.Sprintf("Invalid amount: %s", detail), http.StatusBadRequest)
}

func ErrPackageMismatch(detail string) *AppError {
	return New("VAL_002", fmt.Sprintf("Package mismatch: %s", detail), http.StatusBadRequest)
}

func ErrUnknownChannel(channel string) *AppError {
	return New("VAL_003", fmt.Sprintf("Unknown payment channel %q", channel), http.StatusBadRequest)
}

// Validation returns a generic VAL_000 validation error.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Signature & Replay (SIG) ----

func ErrInvalidSignature() *AppError {
	return New("SIG_001", "Invalid signature", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SIG_002", "Request timestamp outside allowed window", http.StatusForbidden)
}

func ErrReplayDetected() *AppError {
	return New("SIG_003", "Message already processed", http.StatusForbidden)
}

func ErrUnknownMerchant(merchantID string) *AppError {
	return New("SIG_004", fmt.Sprintf("Unknown or disabled merchant %q", merchantID), http.StatusUnauthorized)
}

// ---- Order Business Logic (ORD) ----

func ErrOrderNotFound() *AppError {
	return New("ORD_001", "Order not found", http.StatusNotFound)
}

func ErrDuplicateOrder(businessOrderID string) *AppError {
	return New("ORD_002", fmt.Sprintf("Business order %q already settled", businessOrderID), http.StatusConflict)
}

func ErrOrderTerminal() *AppError {
	return New("ORD_003", "Order is in a terminal state", http.StatusConflict)
}

// ---- Upstream Gateway (GW) ----

func ErrGatewayRejected(channel string, err error) *AppError {
	return Wrap("GW_001", fmt.Sprintf("Gateway %q rejected the payment", channel), http.StatusBadGateway, err)
}

func ErrGatewayUnavailable(channel string, err error) *AppError {
	return Wrap("GW_002", fmt.Sprintf("Gateway %q unavailable", channel), http.StatusBadGateway, err)
}

// ---- Merchant Callback Delivery (CB) ----

func ErrCallbackExhausted(attempts int) *AppError {
	return New("CB_001", fmt.Sprintf("Merchant callback failed after %d attempts", attempts), http.StatusBadGateway)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
