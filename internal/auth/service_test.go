package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/milad/meterreader/internal/domain"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Verify(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

func newTestIssuer(t *testing.T) *Issuer {
	t.Helper()
	iss, err := NewIssuer("secret", "meterreader", time.Minute)
	require.NoError(t, err)
	return iss
}

func TestService_CreateToken(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	store.On("Verify", mock.Anything, "user", "pw").Return(true, nil)
	iss := newTestIssuer(t)

	svc := NewService(store, iss, zap.NewNop())
	grant, err := svc.CreateToken(context.Background(), domain.Credential{Username: "user", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, grant.Success)
	assert.True(t, grant.ExpiresAt.After(time.Now()))

	sub, err := iss.Verify(grant.Token)
	require.NoError(t, err)
	assert.Equal(t, "user", sub)
	store.AssertExpectations(t)
}

func TestService_CreateToken_WrongPassword(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	store.On("Verify", mock.Anything, "user", "wrongpass").Return(false, nil)

	svc := NewService(store, newTestIssuer(t), nil)
	grant, err := svc.CreateToken(context.Background(), domain.Credential{Username: "user", Password: "wrongpass"})
	require.NoError(t, err)
	assert.False(t, grant.Success)
	assert.Empty(t, grant.Token)
	assert.True(t, grant.ExpiresAt.IsZero())
}

func TestService_CreateToken_EmptyCredentialSkipsStore(t *testing.T) {
	t.Parallel()

	store := new(mockStore)
	svc := NewService(store, newTestIssuer(t), nil)

	grant, err := svc.CreateToken(context.Background(), domain.Credential{Username: "user"})
	require.NoError(t, err)
	assert.False(t, grant.Success)
	store.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateToken_StoreFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("store down")
	store := new(mockStore)
	store.On("Verify", mock.Anything, "user", "pw").Return(false, boom)

	svc := NewService(store, newTestIssuer(t), nil)
	_, err := svc.CreateToken(context.Background(), domain.Credential{Username: "user", Password: "pw"})
	assert.ErrorIs(t, err, boom)
}
