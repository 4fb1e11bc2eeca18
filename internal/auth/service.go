package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/milad/meterreader/internal/domain"
)

// Service issues bearer tokens for valid credentials.
type Service struct {
	store  CredentialStore
	issuer *Issuer
	logger *zap.Logger
}

func NewService(store CredentialStore, issuer *Issuer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, issuer: issuer, logger: logger}
}

// CreateToken returns Success=false with a nil error for unknown users or wrong passwords.
// An error is returned only when the store or signer fails.
func (s *Service) CreateToken(ctx context.Context, cred domain.Credential) (domain.TokenGrant, error) {
	if cred.Username == "" || cred.Password == "" {
		return domain.TokenGrant{}, nil
	}

	ok, err := s.store.Verify(ctx, cred.Username, cred.Password)
	if err != nil {
		return domain.TokenGrant{}, fmt.Errorf("verify credentials: %w", err)
	}
	if !ok {
		s.logger.Info("token request rejected", zap.String("username", cred.Username))
		return domain.TokenGrant{}, nil
	}

	token, exp, err := s.issuer.Issue(cred.Username)
	if err != nil {
		return domain.TokenGrant{}, err
	}
	s.logger.Info("token issued", zap.String("username", cred.Username), zap.Time("expires_at", exp))
	return domain.TokenGrant{Success: true, Token: token, ExpiresAt: exp}, nil
}
