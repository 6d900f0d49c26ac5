package auth

import (
	"net/mail"

	"github.com/flashdeck/flashdeck-backend/internal/domain"
)

// RegisterInput holds the parameters for Register.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate checks all fields and collects all errors.
func (i *RegisterInput) Validate() error {
	var errs []domain.FieldError

	if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if len(i.Username) < 3 || len(i.Username) > 64 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be between 3 and 64 characters"})
	}
	if len(i.Password) < 8 || len(i.Password) > 128 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be between 8 and 128 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds the parameters for Login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
func (i *LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RefreshInput holds the parameters for Refresh.
type RefreshInput struct {
	RefreshToken string
}

// Validate checks the refresh token is present.
func (i *RefreshInput) Validate() error {
	if i.RefreshToken == "" {
		return domain.NewValidationError("refresh_token", "required")
	}
	return nil
}
