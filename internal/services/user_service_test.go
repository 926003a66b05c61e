package services

import (
	"context"
	"testing"
	"time"

	"github.com/Jfgm299/centro-control-personal/internal/apperrors"
	"github.com/Jfgm299/centro-control-personal/internal/auth"
	"github.com/Jfgm299/centro-control-personal/internal/db/repositories"
	"github.com/Jfgm299/centro-control-personal/internal/models/dtos"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	db := setupTestDB(t)
	issuer := auth.NewTokenIssuer("test-secret", 30*time.Minute)
	return NewUserService(repositories.NewUserRepository(db), issuer, 30*time.Minute, 7*24*time.Hour)
}

func registerUser(t *testing.T, svc *UserService, email, username string) *dtos.UserResponse {
	t.Helper()
	user, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Email:    email,
		Username: username,
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("Failed to register user: %v", err)
	}
	return user
}

func TestUserService_Register(t *testing.T) {
	svc := newUserService(t)

	user := registerUser(t, svc, "  Ana@Example.COM ", "ana")
	if user.Email != "ana@example.com" {
		t.Errorf("Expected normalized email, got %s", user.Email)
	}
	if user.ID == 0 {
		t.Error("Expected a user id")
	}
}

func TestUserService_Register_DuplicateEmailAndUsername(t *testing.T) {
	svc := newUserService(t)
	registerUser(t, svc, "ana@example.com", "ana")
	ctx := context.Background()

	_, err := svc.Register(ctx, dtos.RegisterRequest{Email: "ana@example.com", Username: "other", Password: "correcthorse"})
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("Expected conflict for duplicate email, got %v", err)
	}

	_, err = svc.Register(ctx, dtos.RegisterRequest{Email: "other@example.com", Username: "ana", Password: "correcthorse"})
	if !apperrors.IsKind(err, apperrors.KindConflict) {
		t.Errorf("Expected conflict for duplicate username, got %v", err)
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, dtos.RegisterRequest{Email: "a@b.com", Username: "short", Password: "1234567"})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for short password, got %v", err)
	}

	_, err = svc.Register(ctx, dtos.RegisterRequest{Email: "", Username: "", Password: "correcthorse"})
	if !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Errorf("Expected validation error for missing fields, got %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	svc := newUserService(t)
	registerUser(t, svc, "ana@example.com", "ana")
	ctx := context.Background()

	tokens, err := svc.Login(ctx, dtos.LoginRequest{Email: "ANA@example.com", Password: "correcthorse"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Error("Expected a full token pair")
	}
	if tokens.TokenType != "bearer" {
		t.Errorf("Expected bearer token type, got %s", tokens.TokenType)
	}
	if tokens.ExpiresIn != 1800 {
		t.Errorf("Expected 1800s expiry, got %d", tokens.ExpiresIn)
	}
}

func TestUserService_Login_BadCredentials(t *testing.T) {
	svc := newUserService(t)
	registerUser(t, svc, "ana@example.com", "ana")
	ctx := context.Background()

	_, err := svc.Login(ctx, dtos.LoginRequest{Email: "nobody@example.com", Password: "correcthorse"})
	if !apperrors.IsKind(err, apperrors.KindUnauthorized) {
		t.Errorf("Expected unauthorized for unknown email, got %v", err)
	}

	_, err = svc.Login(ctx, dtos.LoginRequest{Email: "ana@example.com", Password: "wrongpassword"})
	if !apperrors.IsKind(err, apperrors.KindUnauthorized) {
		t.Errorf("Expected unauthorized for wrong password, got %v", err)
	}
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	svc := newUserService(t)
	registerUser(t, svc, "ana@example.com", "ana")
	ctx := context.Background()

	tokens, err := svc.Login(ctx, dtos.LoginRequest{Email: "ana@example.com", Password: "correcthorse"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rotated, err := svc.Refresh(ctx, dtos.RefreshRequest{RefreshToken: tokens.RefreshToken})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rotated.RefreshToken == tokens.RefreshToken {
		t.Error("Expected a fresh refresh token after rotation")
	}

	// The presented token is revoked and cannot be replayed.
	_, err = svc.Refresh(ctx, dtos.RefreshRequest{RefreshToken: tokens.RefreshToken})
	if !apperrors.IsKind(err, apperrors.KindUnauthorized) {
		t.Errorf("Expected unauthorized replaying a rotated token, got %v", err)
	}
}

func TestUserService_Refresh_ExpiredToken(t *testing.T) {
	svc := newUserService(t)
	registerUser(t, svc, "ana@example.com", "ana")
	ctx := context.Background()

	tokens, err := svc.Login(ctx, dtos.LoginRequest{Email: "ana@example.com", Password: "correcthorse"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	svc.nowFn = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }
	_, err = svc.Refresh(ctx, dtos.RefreshRequest{RefreshToken: tokens.RefreshToken})
	if !apperrors.IsKind(err, apperrors.KindUnauthorized) {
		t.Errorf("Expected unauthorized for expired token, got %v", err)
	}
}

func TestUserService_Me(t *testing.T) {
	svc := newUserService(t)
	user := registerUser(t, svc, "ana@example.com", "ana")

	me, err := svc.Me(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if me.Username != "ana" {
		t.Errorf("Expected ana, got %s", me.Username)
	}
}
