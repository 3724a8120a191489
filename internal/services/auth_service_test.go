package services_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"wegotboard/internal/models"
	"wegotboard/internal/repositories"
	"wegotboard/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthService_IssueToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret)

	before := time.Now().Unix()
	token, err := authService.IssueToken("ada@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", claims["email"])

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.GreaterOrEqual(t, iat, before)
	assert.Equal(t, int64(services.SessionDuration/time.Second), exp-iat)
}

func TestAuthService_IssueTokenWithoutSecret(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), "")

	_, err := authService.IssueToken("ada@example.com")
	assert.ErrorIs(t, err, services.ErrInternal)
	assert.Equal(t, services.ErrSigningSecretMissing, err)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testJWTSecret)

	// Test valid token
	validTokenString := signToken(t, testJWTSecret, jwt.MapClaims{
		"email": "ada@example.com",
		"exp":   jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims["email"])

	// Test malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test wrong secret
	forged := signToken(t, "another_secret", jwt.MapClaims{
		"email": "ada@example.com",
		"exp":   jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	_, err = authService.ValidateToken(forged)
	assert.Error(t, err)

	// Test expired token
	expiredTokenString := signToken(t, testJWTSecret, jwt.MapClaims{
		"email": "ada@example.com",
		"exp":   jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAuthService_Identify(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{ID: "user-123", Email: "ada@example.com", IsAdmin: true}
	token, err := authService.IssueToken(user.Email)
	require.NoError(t, err)

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	identity, err := authService.Identify(token)
	require.NoError(t, err)
	assert.Equal(t, &models.Identity{UserID: "user-123", Email: "ada@example.com", IsAdmin: true}, identity)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_IdentifyFailures(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	t.Run("garbage token", func(t *testing.T) {
		_, err := authService.Identify("not-a-token")
		assert.Equal(t, services.ErrInvalidToken, err)
	})

	t.Run("token without email", func(t *testing.T) {
		token := signToken(t, testJWTSecret, jwt.MapClaims{
			"exp": jwt.TimeFunc().Add(time.Hour).Unix(),
		})
		_, err := authService.Identify(token)
		assert.Equal(t, services.ErrInvalidToken, err)
	})

	t.Run("owner deleted", func(t *testing.T) {
		token, err := authService.IssueToken("gone@example.com")
		require.NoError(t, err)
		mockRepo.On("GetByEmail", "gone@example.com").
			Return(nil, fmt.Errorf("user gone@example.com: %w", repositories.ErrNotFound)).Once()

		_, err = authService.Identify(token)
		assert.Equal(t, services.ErrInvalidToken, err)
	})

	t.Run("store failure", func(t *testing.T) {
		token, err := authService.IssueToken("ada@example.com")
		require.NoError(t, err)
		mockRepo.On("GetByEmail", "ada@example.com").Return(nil, errors.New("connection reset")).Once()

		_, err = authService.Identify(token)
		assert.ErrorIs(t, err, services.ErrInternal)
	})

	mockRepo.AssertExpectations(t)
}
