package services

import (
	"errors"
	"log"

	"nbcfdc-lending/internal/adapters/store"
	"nbcfdc-lending/internal/core/domain"
	"nbcfdc-lending/internal/pkg/password"
)

// AuthService handles authentication against the Identity Directory
type AuthService struct {
	identities store.IdentityDirectory
}

// NewAuthService creates a new auth service
func NewAuthService(identities store.IdentityDirectory) *AuthService {
	return &AuthService{identities: identities}
}

// Authenticate verifies credentials and returns the session projection for the
// identity. An unknown username and a wrong password are indistinguishable to
// the caller; both return ErrInvalidCredentials.
func (s *AuthService) Authenticate(username, plaintext string) (*domain.Session, error) {
	user, err := s.identities.GetByUsername(username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plaintext, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	log.Printf("User logged in: %s", user.Username)

	return &domain.Session{
		Username:    user.Username,
		Role:        user.Role,
		Name:        user.Name,
		ExternalID:  user.ExternalID,
		CreditScore: user.CreditScore,
		RiskBand:    user.RiskBand,
	}, nil
}
