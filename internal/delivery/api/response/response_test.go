package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "marketsync/internal/delivery/context"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestOK(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, OK(c, map[string]int{"count": 2}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"count":2},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestHandleAppError(t *testing.T) {
	t.Run("domain error keeps details", func(t *testing.T) {
		c, rec := newContext()
		require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrNotFound.WithDetails("store s1"), "lookup")))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "NOT_FOUND", body.Error.Code)
		assert.Equal(t, "store s1", body.Error.Details)
		assert.Equal(t, "req-1", body.Meta.RequestID)
	})

	t.Run("forbidden drops details", func(t *testing.T) {
		c, rec := newContext()
		require.NoError(t, HandleAppError(c, domainerrors.ErrForbidden.WithDetails("not the owner")))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, decode(t, rec).Error.Details)
	})

	t.Run("other errors go to the error handler", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("boom")

		err := HandleAppError(c, cause)
		assert.ErrorIs(t, err, cause)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestBindingError(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, BindingError(c, "Invalid store input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
}
