package auth

import (
	"errors"
	"fmt"
	"time"

	"cricket-scoring/internal/database/models"
	apperrors "cricket-scoring/internal/errors"
	"cricket-scoring/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and validates tokens and verifies user credentials. The
// same JWT backs both the API bearer tokens and the web session cookie.
type Service struct {
	userRepo      repository.UserRepositoryInterface
	secret        []byte
	tokenLifetime time.Duration
}

// NewService creates a new authentication service
func NewService(userRepo repository.UserRepositoryInterface, secret string, tokenLifetime time.Duration) *Service {
	if tokenLifetime == 0 {
		tokenLifetime = 24 * time.Hour
	}
	return &Service{
		userRepo:      userRepo,
		secret:        []byte(secret),
		tokenLifetime: tokenLifetime,
	}
}

// Register creates a user with a bcrypt-hashed password
func (s *Service) Register(username, password string) (*models.User, error) {
	if username == "" {
		return nil, apperrors.NewValidationError("username", "username is required")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "password is required")
	}

	existing, err := s.userRepo.GetByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair. A missing user and a bad
// password both surface the same invalid-credentials error.
func (s *Service) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken creates a signed JWT for a user
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "cricket-scoring",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a signed JWT
func (s *Service) ValidateToken(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
