package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"wegotboard/internal/models"
	"wegotboard/internal/repositories"

	"github.com/dgrijalva/jwt-go"
)

// SessionDuration is how long an issued session token stays valid.
const SessionDuration = time.Hour

// AuthService issues and verifies session tokens and resolves them to a caller identity.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: SessionDuration,
	}
}

// IssueToken signs a token bound to email that expires after the session duration.
func (s *AuthService) IssueToken(email string) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", ErrSigningSecretMissing
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   now.Add(s.tokenDurat).Unix(),
		"iat":   now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", internalError("failed to generate token", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// Identify resolves a session token to the stored user its email claim names.
func (s *AuthService) Identify(tokenString string) (*models.Identity, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, internalError("failed to resolve token owner", err)
	}
	return &models.Identity{UserID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin}, nil
}
