package auth

import "github.com/flashdeck/flashdeck-backend/internal/domain"

// AuthResult is returned by Register, Login, and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
