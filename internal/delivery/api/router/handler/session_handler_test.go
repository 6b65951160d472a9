package handler

import (
	"net/http"
	"testing"

	"marketsync/internal/domain/service"
	mockUsecase "marketsync/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_Me(t *testing.T) {
	h := NewSessionHandler(SessionHandlerParams{SessionUC: mockUsecase.NewMockSessionUsecase(t), Logger: newDiscardLogger()})

	rec := serve(t, newTestEcho(), http.MethodGet, "/auth/me", "/auth/me", "",
		&service.Identity{UID: "u1", Email: "u1@example.com", Admin: true}, h.Me)

	require.Equal(t, http.StatusOK, rec.Code)
	var got SessionResponse
	decodeData(t, rec, &got)
	assert.Equal(t, SessionResponse{UID: "u1", Email: "u1@example.com", Admin: true}, got)
}

func TestSessionHandler_SignOut(t *testing.T) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()})
	sessionUC.EXPECT().SignOut(mock.Anything, "u1").Return(nil)

	rec := serve(t, newTestEcho(), http.MethodPost, "/auth/signout", "/auth/signout", "", &service.Identity{UID: "u1"}, h.SignOut)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
