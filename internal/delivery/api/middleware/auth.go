package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "marketsync/internal/delivery/context"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"
	"marketsync/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	keyIdentity  = "identity"
	bearerPrefix = "Bearer "
)

// AuthMiddleware resolves the Firebase ID token of a request to the
// signed-in user.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, logger: logger}
}

// Identify attaches the user when the request carries a token and lets
// anonymous requests through. A token that does not verify is rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
			return next(c)
		}
		if err := m.authenticate(c); err != nil {
			return err
		}

		return next(c)
	}
}

// Authenticate requires a verified token. Failures are returned to the
// centralized error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := m.authenticate(c); err != nil {
			return err
		}

		return next(c)
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok || !identity.Admin {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || strings.TrimSpace(token) == "" {
		return domainerrors.ErrUnauthenticated.WithDetails("a Bearer ID token is required")
	}

	identity, err := m.sessionUC.Authenticate(c.Request().Context(), token)
	if err != nil {
		return errors.Wrap(err, "authenticate request")
	}

	SetIdentity(c, identity)
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("uid", identity.UID))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

	return nil
}

// SetIdentity attaches the signed-in user to the request.
func SetIdentity(c echo.Context, identity *service.Identity) {
	c.Set(keyIdentity, identity)
}

// GetIdentity returns the signed-in user of the request.
func GetIdentity(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*service.Identity)

	return identity, ok && identity != nil
}

// GetUserID returns the UID of the signed-in user, empty for anonymous requests.
func GetUserID(c echo.Context) string {
	if identity, ok := GetIdentity(c); ok {
		return identity.UID
	}

	return ""
}
