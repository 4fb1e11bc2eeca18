package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"github.com/milad/meterreader/internal/domain"
)

var ErrMalformedTokenResponse = errors.New("malformed token response")

// TokenManager owns the worker's bearer token.
type TokenManager struct {
	client TokenClient
	now    func() time.Time

	mu    sync.Mutex
	token domain.Token
}

func NewTokenManager(client TokenClient, now func() time.Time) *TokenManager {
	if now == nil {
		now = time.Now
	}
	return &TokenManager{client: client, now: now}
}

// NeedsLogin is true when no token is held or the held one has expired.
func (m *TokenManager) NeedsLogin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.token.Usable(m.now())
}

// Authenticate requests a new token. Rejected credentials return (false, nil)
// and, like transport errors, leave the current token in place.
func (m *TokenManager) Authenticate(ctx context.Context, cred domain.Credential) (bool, error) {
	resp, err := m.client.CreateToken(ctx, &meterreaderv1.TokenRequest{
		Username: cred.Username,
		Password: cred.Password,
	})
	if err != nil {
		return false, fmt.Errorf("create token: %w", err)
	}
	if !resp.GetSuccess() {
		return false, nil
	}
	exp := resp.GetExpiration()
	if resp.GetToken() == "" || exp == nil || exp.CheckValid() != nil {
		return false, ErrMalformedTokenResponse
	}

	m.mu.Lock()
	m.token = domain.Token{Value: resp.GetToken(), ExpiresAt: exp.AsTime()}
	m.mu.Unlock()
	return true, nil
}

// Token returns the current token if it is still usable.
func (m *TokenManager) Token() (domain.Token, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.token.Usable(m.now()) {
		return domain.Token{}, false
	}
	return m.token, true
}

// ExpiresAt reports the expiry of the held token, zero when none is held.
func (m *TokenManager) ExpiresAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token.ExpiresAt
}

// Invalidate drops the held token so the next cycle logs in again.
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	m.token = domain.Token{}
	m.mu.Unlock()
}
