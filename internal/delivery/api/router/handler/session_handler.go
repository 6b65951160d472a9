package handler

import (
	"log/slog"
	"net/http"

	"marketsync/internal/delivery/api/middleware"
	"marketsync/internal/delivery/api/response"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the signed-in identity.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SessionResponse is the identity returned by GET /auth/me.
type SessionResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
	Admin bool   `json:"admin"`
}

// Me handles GET /auth/me
func (h *SessionHandler) Me(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Sign in required")
	}

	return response.OK(c, SessionResponse{
		UID:   identity.UID,
		Email: identity.Email,
		Admin: identity.Admin,
	})
}

// SignOut handles POST /auth/signout. Every cached user-scoped view is
// dropped and the refresh tokens are revoked.
func (h *SessionHandler) SignOut(c echo.Context) error {
	if err := h.sessionUC.SignOut(c.Request().Context(), middleware.GetUserID(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
