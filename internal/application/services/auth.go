package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/domain/user"
	"sportmeet-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(jwtService *jwt.Service) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

// GenerateToken checks the password against the stored hash and issues a
// token with the user's email as subject.
func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	if u.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}
	err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateToken(u.Email)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
