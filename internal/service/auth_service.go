package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-records/internal/models"
	"hospital-records/internal/repository"
	"hospital-records/pkg/utils"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidRefreshToken = errors.New("invalid or revoked refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type userStore interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(ctx context.Context, hash string) error
}

type auditRecorder interface {
	CreateAuditLog(ctx context.Context, userID *uuid.UUID, action string, details string) error
}

type AuthService struct {
	userRepo  userStore
	auditRepo auditRecorder
}

func NewAuthService(userRepo userStore, auditRepo auditRecorder) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	response, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &user.ID, "user_login", fmt.Sprintf("User %s logged in", username))
	return response, nil
}

// RefreshAccessToken generates a new access token from a refresh token
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	token, err := s.userRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	if time.Now().After(token.ExpiresAt) {
		return "", ErrRefreshTokenExpired
	}

	accessToken, err := utils.GenerateAccessToken(token.User.ID, token.User.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.userRepo.RevokeRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// Register creates a regular user account and logs it in
func (s *AuthService) Register(ctx context.Context, username, password string) (*LoginResponse, error) {
	user, err := s.createUser(ctx, username, password, models.RoleUser)
	if err != nil {
		return nil, err
	}

	response, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &user.ID, "user_registration", fmt.Sprintf("User %s registered", username))
	return response, nil
}

// EnsureAdmin creates the bootstrap admin account unless the username already exists.
// It reports whether an account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	user, err := s.createUser(ctx, username, password, models.RoleAdmin)
	if errors.Is(err, ErrUsernameTaken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	_ = s.auditRepo.CreateAuditLog(ctx, &user.ID, "admin_bootstrap", fmt.Sprintf("Admin %s created", username))
	return true, nil
}

func (s *AuthService) createUser(ctx context.Context, username, password, role string) (*models.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := utils.GenerateRefreshToken()
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}
	if err := s.userRepo.CreateRefreshToken(ctx, refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}
