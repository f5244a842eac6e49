// Package auth verifies the single shared admin credential and issues
// session tokens. There is no user table, the panel has exactly one
// operator role.
package auth

import (
	"context"
	"errors"

	"github.com/sandevex/hiring-backend-go/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidPassword is returned for a wrong admin password
var ErrInvalidPassword = errors.New("invalid password")

// AuthService defines the interface for admin login
type AuthService interface {
	// Login verifies the password against the configured hash and returns
	// a fresh session token with its expiry
	Login(ctx context.Context, password string) (token string, expiresAt int64, err error)
}

type AuthServiceImpl struct {
	passwordHash   string
	sessionService session.Service
}

func NewAuthService(passwordHash string, sessionService session.Service) AuthService {
	return &AuthServiceImpl{
		passwordHash:   passwordHash,
		sessionService: sessionService,
	}
}

// Login implements AuthService.
func (s *AuthServiceImpl) Login(_ context.Context, password string) (string, int64, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", 0, ErrInvalidPassword
	}

	return s.sessionService.Generate()
}
