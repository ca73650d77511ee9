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

// HasCode reports whether err is an *AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Input Validation (VAL) ----

// ErrValidationFailure names the field that failed stage-local validation.
func ErrValidationFailure(field string, reason string) *AppError {
	return New("VAL_001", fmt.Sprintf("invalid %s: %s", field, reason), http.StatusBadRequest)
}

// Validation wraps a request binding failure.
func Validation(detail string) *AppError {
	return New("VAL_001", detail, http.StatusBadRequest)
}

// ---- Mandate Chain (CHAIN) ----

// ErrMissingPredecessor signals that the required prior mandate is absent.
func ErrMissingPredecessor(kind string) *AppError {
	return New("CHAIN_001", fmt.Sprintf("no %s mandate found for this session", kind), http.StatusPreconditionFailed)
}

// ErrExpiredMandate is fatal to the current chain; the stage that
// produced the expired mandate must be re-run.
func ErrExpiredMandate(kind string) *AppError {
	return New("CHAIN_002", fmt.Sprintf("your %s has expired, please restart from that stage", kind), http.StatusGone)
}

// ErrMalformedMandate signals a structurally incomplete prior mandate.
func ErrMalformedMandate(detail string) *AppError {
	return New("CHAIN_003", fmt.Sprintf("malformed mandate: %s", detail), http.StatusUnprocessableEntity)
}

// ErrSignatureMismatch signals tampering: the recomputed merchant
// authorization does not match the stored one.
func ErrSignatureMismatch() *AppError {
	return New("CHAIN_004", "merchant authorization does not match cart contents", http.StatusConflict)
}

// ---- Consent (CONSENT) ----

func ErrConsentDenied() *AppError {
	return New("CONSENT_001", "payment was declined by the donor", http.StatusForbidden)
}

func ErrConsentNotObtained() *AppError {
	return New("CONSENT_002", "explicit donor consent is required before payment", http.StatusPreconditionRequired)
}

// ---- Session & Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired session token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrStoreError wraps a mandate store failure.
func ErrStoreError(err error) *AppError {
	return Wrap("SYS_002", "Mandate store failure", http.StatusServiceUnavailable, err)
}
