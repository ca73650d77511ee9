package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New("CHAIN_001", "no intent mandate found for this session", http.StatusPreconditionFailed)
	assert.Equal(t, "[CHAIN_001] no intent mandate found for this session", err.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap("SYS_002", "Mandate store failure", http.StatusServiceUnavailable, inner)

	assert.Contains(t, err.Error(), "SYS_002")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestHasCode(t *testing.T) {
	err := ErrExpiredMandate("intent")
	assert.True(t, HasCode(err, "CHAIN_002"))
	assert.False(t, HasCode(err, "CHAIN_001"))

	wrapped := fmt.Errorf("stage failed: %w", err)
	assert.True(t, HasCode(wrapped, "CHAIN_002"))

	assert.False(t, HasCode(errors.New("plain"), "CHAIN_002"))
	assert.False(t, HasCode(nil, "CHAIN_002"))
}

func TestErrValidationFailure_NamesField(t *testing.T) {
	err := ErrValidationFailure("charity_ein", "must match XX-XXXXXXX")
	assert.Equal(t, "VAL_001", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Contains(t, err.Message, "charity_ein")
}

func TestChainErrors_HTTPStatuses(t *testing.T) {
	assert.Equal(t, http.StatusPreconditionFailed, ErrMissingPredecessor("cart").HTTPStatus)
	assert.Equal(t, http.StatusGone, ErrExpiredMandate("cart").HTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, ErrMalformedMandate("contents missing").HTTPStatus)
	assert.Equal(t, http.StatusConflict, ErrSignatureMismatch().HTTPStatus)
	assert.Equal(t, http.StatusForbidden, ErrConsentDenied().HTTPStatus)
	assert.Equal(t, http.StatusPreconditionRequired, ErrConsentNotObtained().HTTPStatus)
}
