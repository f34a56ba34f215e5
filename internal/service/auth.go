package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/finance-service/internal/apperr"
	"github.com/Dan9191/finance-service/internal/models"
)

// ErrInvalidCredentials is returned by Login for any unknown email or wrong password
var ErrInvalidCredentials = errors.New("invalid credentials")

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if username == "" {
		return nil, apperr.Validation("register", "username is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.Validation("register", "invalid email %q", email)
	}
	if len(password) < 8 {
		return nil, apperr.Validation("register", "password must be at least 8 characters")
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, apperr.Dependency("register", err)
	}

	s.log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if errors.Is(err, apperr.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", apperr.Dependency("login", err)
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// Generate JWT
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL())),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.WithField("user_id", user.ID).Info("User logged in")
	return tokenString, nil
}

func (s *Service) tokenTTL() time.Duration {
	if s.config.TokenTTL > 0 {
		return s.config.TokenTTL
	}
	return 24 * time.Hour
}
