package impl

import (
	"context"
	"testing"

	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"
	mockService "marketsync/internal/mocks/service"
	"marketsync/internal/querycache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Authenticate(t *testing.T) {
	ctx := context.Background()
	identity := mockService.NewMockIdentityProvider(t)
	identity.EXPECT().VerifyIDToken(ctx, "good").Return(&service.Identity{UID: "u1", Email: "a@b.c"}, nil)
	identity.EXPECT().VerifyIDToken(ctx, "expired").Return(nil, errors.Wrap(service.ErrInvalidIDToken, "token expired"))
	identity.EXPECT().VerifyIDToken(ctx, "flaky").Return(nil, errors.New("certificate fetch failed"))

	svc := NewSessionService(identity, newTestCache(), newDiscardLogger())

	user, err := svc.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)

	_, err = svc.Authenticate(ctx, "expired")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = svc.Authenticate(ctx, "flaky")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSessionService_SignOut_DropsUserScopedQueries(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache()
	cache.Set(userStoreKey("u1"), nil)
	cache.Set(preferredLocationKey("u1"), nil)
	cache.Set(preferredLocationKey("u2"), nil)

	identity := mockService.NewMockIdentityProvider(t)
	identity.EXPECT().RevokeSessions(ctx, "u1").Return(nil)

	svc := NewSessionService(identity, cache, newDiscardLogger())
	require.NoError(t, svc.SignOut(ctx, "u1"))

	assert.Equal(t, querycache.StateInvalidated, cache.Peek(userStoreKey("u1")))
	assert.Equal(t, querycache.StateInvalidated, cache.Peek(preferredLocationKey("u1")))
	assert.Equal(t, querycache.StateFresh, cache.Peek(preferredLocationKey("u2")))

	assert.ErrorIs(t, svc.SignOut(ctx, ""), domainerrors.ErrUnauthenticated)
}
