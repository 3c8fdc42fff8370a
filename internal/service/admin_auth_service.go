package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService authenticates the admin account and mints tokens.
type AdminAuthService interface {
	Login(email, password string) (string, error)
}

// adminAuthService checks credentials against a single configured
// admin: an email plus a bcrypt hash held in the environment. The sheet
// store has no admins table to consult.
type adminAuthService struct {
	email        string
	passwordHash string
	jwtSecret    string
}

func NewAdminAuthService(email, passwordHash, jwtSecret string) AdminAuthService {
	return &adminAuthService{email: email, passwordHash: passwordHash, jwtSecret: jwtSecret}
}

func (s *adminAuthService) Login(email, password string) (string, error) {
	if s.email == "" || s.passwordHash == "" {
		return "", errors.New("admin login is not configured")
	}
	if email != s.email {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	if s.jwtSecret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
