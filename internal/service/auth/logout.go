package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
	"github.com/flashdeck/flashdeck-backend/pkg/ctxutil"
)

// Logout revokes every refresh token of the authenticated user.
// Outstanding access tokens stay valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout revoke tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out",
		slog.String("user_id", userID.String()))

	return nil
}
