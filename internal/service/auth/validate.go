package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

// ValidateToken resolves the durable user identity from a bearer access
// token. Used by the auth middleware on every request.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return userID, nil
}
