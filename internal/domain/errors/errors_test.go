package errors

import (
	"net/http"
	"testing"

	"marketsync/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := errors.Wrap(ErrStoreNotFound.WithDetails("owner u1"), "lookup")

	assert.True(t, errors.Is(err, ErrStoreNotFound))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "store not found: owner u1", ErrStoreNotFound.WithDetails("owner u1").Error())
}

func TestStoreUnavailableError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := errors.Wrap(NewStoreUnavailableError("read advertisements", cause), "fetch")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
	assert.True(t, errors.Is(err, cause))
}

func TestDecodeError(t *testing.T) {
	err := NewDecodeError("advertisements", "ad1", "price", "must be > 0")

	assert.Equal(t, `decode advertisements/ad1: field "price" must be > 0`, err.Error())
	assert.Equal(t, "advertisements/ad1", err.Details())
	assert.Equal(t, "decode stores/s1: not an object", NewDecodeError("stores", "s1", "", "not an object").Error())
}
