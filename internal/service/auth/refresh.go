package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	authtoken "github.com/flashdeck/flashdeck-backend/internal/auth"
	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

// Refresh exchanges a valid refresh token for a new token pair. The used
// token is deleted first (single-use rotation); an unknown or expired token
// returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := authtoken.HashToken(input.RefreshToken)

	stored, err := s.tokens.Get(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokens.Delete(ctx, hash)
		return nil, domain.ErrUnauthorized
	}

	if err := s.tokens.Delete(ctx, hash); err != nil {
		return nil, fmt.Errorf("auth.Refresh rotate token: %w", err)
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}

	return result, nil
}
