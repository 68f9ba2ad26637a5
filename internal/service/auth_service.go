package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"userhub/internal/auth"
	"userhub/internal/cache"
	apperrors "userhub/internal/errors"
	"userhub/internal/repository"
)

// AuthService handles login and the change-password flow.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword, confirmPassword string) error
}

type authService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
	jwt    *auth.JWTService
	cache  *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(repo repository.UserRepository, hasher auth.PasswordHasher, jwt *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{repo: repo, hasher: hasher, jwt: jwt, cache: cache}
}

// Login verifies credentials and issues an access token. An unknown email and
// a wrong password both return ErrInvalidCredentials so the caller cannot
// probe which accounts exist.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// ChangePassword rehashes and stores a new password. Preconditions are
// checked in order, short-circuiting on the first failure: old+new present,
// confirm present, old password verifies, new equals confirm.
//
// Outstanding access tokens stay valid until natural expiry; there is no
// revocation hook on password change.
func (s *authService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword, confirmPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperrors.ErrPasswordsRequired
	}
	if confirmPassword == "" {
		return apperrors.ErrConfirmRequired
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		return apperrors.ErrOldPasswordIncorrect
	}
	if newPassword != confirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	_ = s.cache.Delete(ctx, fmt.Sprintf("user:%d", userID))
	return nil
}
