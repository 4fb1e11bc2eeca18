package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"github.com/milad/meterreader/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func grantingClient(token string, exp time.Time) *fakeClient {
	return &fakeClient{
		createToken: func(in *meterreaderv1.TokenRequest) (*meterreaderv1.TokenResponse, error) {
			if in.GetPassword() != "pw" {
				return &meterreaderv1.TokenResponse{Success: false}, nil
			}
			return &meterreaderv1.TokenResponse{Success: true, Token: token, Expiration: timestamppb.New(exp)}, nil
		},
	}
}

func TestTokenManager_Lifecycle(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	exp := clock.t.Add(20 * time.Minute)
	m := NewTokenManager(grantingClient("tok-1", exp), clock.Now)

	assert.True(t, m.NeedsLogin(), "before first authentication")
	_, ok := m.Token()
	assert.False(t, ok)

	ok, err := m.Authenticate(context.Background(), domain.Credential{Username: "user", Password: "pw"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, m.NeedsLogin())

	tok, ok := m.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-1", tok.Value)
	assert.True(t, tok.ExpiresAt.Equal(exp))

	clock.t = exp.Add(-time.Nanosecond)
	assert.False(t, m.NeedsLogin())

	clock.t = exp
	assert.True(t, m.NeedsLogin(), "at expiration")
	_, ok = m.Token()
	assert.False(t, ok)
}

func TestTokenManager_WrongPasswordStoresNothing(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewTokenManager(grantingClient("tok-1", clock.t.Add(time.Hour)), clock.Now)

	ok, err := m.Authenticate(context.Background(), domain.Credential{Username: "user", Password: "wrongpass"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, m.NeedsLogin())
}

func TestTokenManager_FailedAuthenticateKeepsPriorToken(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	exp := clock.t.Add(time.Hour)
	client := grantingClient("tok-1", exp)
	m := NewTokenManager(client, clock.Now)

	ok, err := m.Authenticate(context.Background(), domain.Credential{Username: "user", Password: "pw"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Authenticate(context.Background(), domain.Credential{Username: "user", Password: "wrongpass"})
	require.NoError(t, err)
	assert.False(t, ok)

	client.createToken = func(*meterreaderv1.TokenRequest) (*meterreaderv1.TokenResponse, error) {
		return nil, status.Error(codes.Unavailable, "down")
	}
	_, err = m.Authenticate(context.Background(), domain.Credential{Username: "user", Password: "pw"})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	tok, ok := m.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-1", tok.Value)
	assert.False(t, m.NeedsLogin())
}

func TestTokenManager_MalformedResponse(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(&fakeClient{
		createToken: func(*meterreaderv1.TokenRequest) (*meterreaderv1.TokenResponse, error) {
			return &meterreaderv1.TokenResponse{Success: true, Token: "tok"}, nil
		},
	}, nil)

	ok, err := m.Authenticate(context.Background(), domain.Credential{Username: "user", Password: "pw"})
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrMalformedTokenResponse))
	assert.True(t, m.NeedsLogin())
}

func TestTokenManager_PastExpirationStillNeedsLogin(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewTokenManager(grantingClient("stale", clock.t.Add(-time.Minute)), clock.Now)

	ok, err := m.Authenticate(context.Background(), domain.Credential{Username: "user", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, m.NeedsLogin())
}

func TestTokenManager_Invalidate(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := NewTokenManager(grantingClient("tok", clock.t.Add(time.Hour)), clock.Now)

	_, err := m.Authenticate(context.Background(), domain.Credential{Username: "user", Password: "pw"})
	require.NoError(t, err)
	m.Invalidate()
	assert.True(t, m.NeedsLogin())
}
