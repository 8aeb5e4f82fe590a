package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"food-storefront/config"
	"food-storefront/logger"
	"food-storefront/model"
	"food-storefront/repository"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// AuthService handles registration, login and token lifecycle.
type AuthService struct {
	userRepo  repository.IUserRepository
	tokenRepo repository.ITokenRepository
	now       func() time.Time
}

func NewAuthService(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		now:       time.Now,
	}
}

func getJwtKey() []byte {
	return []byte(config.AppConfig.JWT.SecretKey)
}

func accessTTL() time.Duration {
	if ttl := config.AppConfig.JWT.AccessTokenTTL; ttl > 0 {
		return ttl
	}
	return defaultAccessTTL
}

func refreshTTL() time.Duration {
	if ttl := config.AppConfig.JWT.RefreshTokenTTL; ttl > 0 {
		return ttl
	}
	return defaultRefreshTTL
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register creates a user from an already validated request. A blank role
// registers a diner. Emails are stored lowercased.
func (s *AuthService) Register(req model.RegisterRequest) (*model.User, error) {
	role := model.Role(strings.TrimSpace(string(req.Role)))
	if role == "" {
		role = model.RoleUser
	}

	hashed, err := s.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  hashed,
		PhoneNo:   strings.TrimSpace(req.PhoneNo),
		Role:      role,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User registered")
	return user, nil
}

// Login verifies credentials and issues a new token pair.
func (s *AuthService) Login(req model.LoginRequest) (*model.TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.CheckPasswordHash(strings.TrimSpace(req.Password), user.Password) {
		logger.Log.WithField("user_id", user.ID).Warn("Login attempt with wrong password")
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

// Refresh rotates a refresh token: the presented token is consumed and a new
// pair is issued.
func (s *AuthService) Refresh(refreshToken string) (*model.TokenPair, error) {
	hash := hashToken(refreshToken)

	stored, err := s.tokenRepo.GetByTokenHash(hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if err := s.tokenRepo.DeleteByTokenHash(hash); err != nil {
		return nil, err
	}
	if s.now().After(stored.ExpiresAt) {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetUserByID(stored.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issueTokenPair(user)
}

// Logout revokes every refresh token of the user.
func (s *AuthService) Logout(userID int) error {
	return s.tokenRepo.DeleteByUserID(userID)
}

func (s *AuthService) Profile(userID int) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueTokenPair(user *model.User) (*model.TokenPair, error) {
	accessToken, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	stored := &model.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: s.now().Add(refreshTTL()),
	}
	if err := s.tokenRepo.Create(stored); err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Session:      model.Session{UserID: user.ID, Role: user.Role},
	}, nil
}

// GenerateAccessToken signs a short-lived HS256 token carrying the user's
// id and role.
func (s *AuthService) GenerateAccessToken(user *model.User) (string, error) {
	now := s.now()
	claims := &model.AppClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(getJwtKey())
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, nil
}

// ParseAccessToken verifies signature, algorithm and expiry and returns the claims.
func ParseAccessToken(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return getJwtKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
