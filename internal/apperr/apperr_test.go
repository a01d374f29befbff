package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := New(KindNotFound, "document not found")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, fmt.Errorf("view: %w", err), ErrNotFound)
	assert.ErrorIs(t, err, New(KindNotFound, "document not found"))
	assert.NotErrorIs(t, err, New(KindNotFound, "comment not found"))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindStorageFailure, "upload failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.Equal(t, "STORAGE_FAILURE: upload failed: connection reset", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindForbidden, KindOf(fmt.Errorf("x: %w", ErrForbidden)))
	assert.Equal(t, KindInvalidInput, KindOf(Newf(KindInvalidInput, "bad %s", "extension")))
	assert.Equal(t, KindStorageFailure, KindOf(errors.New("boom")))
}

func TestDetailOf(t *testing.T) {
	assert.Equal(t, "only PDF files are allowed", DetailOf(New(KindInvalidInput, "only PDF files are allowed")))
	assert.Equal(t, "not permitted", DetailOf(ErrForbidden))
	assert.Equal(t, "internal server error", DetailOf(errors.New("pq: syntax error at or near")))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(ErrInvalidInput))
	assert.Equal(t, http.StatusUnauthorized, Status(ErrUnauthorized))
	assert.Equal(t, http.StatusForbidden, Status(fmt.Errorf("share: %w", ErrForbidden)))
	assert.Equal(t, http.StatusNotFound, Status(New(KindNotFound, "document not found")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}
