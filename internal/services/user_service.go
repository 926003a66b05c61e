package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/auth"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/logging"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
	gormModels "github.com/Jfgm299/centro-control-personal/internal/models/gorm"
)

// UserService handles registration, login and refresh-token rotation.
type UserService struct {
	repo       *repositories.UserRepository
	issuer     *auth.TokenIssuer
	accessTTL  time.Duration
	refreshTTL time.Duration
	nowFn      func() time.Time
}

func NewUserService(repo *repositories.UserRepository, issuer *auth.TokenIssuer, accessTTL, refreshTTL time.Duration) *UserService {
	return &UserService{
		repo:       repo,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		nowFn:      time.Now,
	}
}

// Register creates an account. Email and username are unique.
func (s *UserService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)
	if email == "" || username == "" {
		return nil, apperrors.Validation("email and username are required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Validation("password must be at least 8 characters")
	}

	if existing, err := s.repo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.Conflict("email %s is already registered", email)
	}
	if existing, err := s.repo.GetByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.Conflict("username %s is already taken", username)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &gormModels.User{
		Email:          email,
		Username:       username,
		HashedPassword: hashed,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logging.Info("user registered", "user_id", user.ID, "username", username)
	return dtos.NewUserResponse(user), nil
}

// Login verifies credentials and issues a token pair. Bad email and bad
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.HashedPassword, req.Password) {
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	return s.issueTokenPair(ctx, user)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Expired rows for the user are pruned on the way.
func (s *UserService) Refresh(ctx context.Context, req dtos.RefreshRequest) (*dtos.TokenResponse, error) {
	if req.RefreshToken == "" {
		return nil, apperrors.Unauthorized("refresh token is required")
	}

	row, err := s.repo.GetValidRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if row == nil || row.ExpiresAt.Before(s.nowFn()) {
		return nil, apperrors.Unauthorized("refresh token is invalid or expired")
	}

	user, err := s.repo.GetByID(ctx, row.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RevokeRefreshToken(ctx, row.Token); err != nil {
		return nil, err
	}
	if err := s.repo.PruneExpiredRefreshTokens(ctx, user.ID); err != nil {
		logging.Warn("failed to prune expired refresh tokens", "user_id", user.ID, "error", err)
	}

	return s.issueTokenPair(ctx, user)
}

// Me returns the authenticated account.
func (s *UserService) Me(ctx context.Context, userID uint) (*dtos.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dtos.NewUserResponse(user), nil
}

func (s *UserService) issueTokenPair(ctx context.Context, user *gormModels.User) (*dtos.TokenResponse, error) {
	accessToken, err := s.issuer.IssueAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.NewString()
	row := &gormModels.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: s.nowFn().Add(s.refreshTTL),
	}
	if err := s.repo.CreateRefreshToken(ctx, row); err != nil {
		return nil, err
	}

	return &dtos.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(s.accessTTL.Seconds()),
	}, nil
}
