package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"userhub/internal/auth"
	"userhub/internal/cache"
	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserPage is one page of the user listing.
type UserPage struct {
	Users   []model.User `json:"users"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	Pages   int          `json:"pages"`
	PerPage int          `json:"per_page"`
	HasNext bool         `json:"has_next"`
	HasPrev bool         `json:"has_prev"`
}

// UserService exposes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, page, perPage int) (*UserPage, error)
	UpdateUser(ctx context.Context, id uint, name, email *string) (*model.User, error)
	ReplaceUser(ctx context.Context, id uint, name, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
	cache  *cache.Client
}

// NewUserService builds a UserService with repository, hasher and cache.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Register hashes the password and persists a new user. The unique email
// constraint is the serialization point for concurrent registrations; the
// pre-check by email only gives the common case a friendlier path.
func (s *userService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user by ID with read-through caching.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// ListUsers returns one page of users with pagination metadata.
func (s *userService) ListUsers(ctx context.Context, page, perPage int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	users, total, err := s.repo.ListPage(ctx, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return &UserPage{
		Users:   users,
		Total:   total,
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		HasNext: page < pages,
		HasPrev: page > 1,
	}, nil
}

// UpdateUser applies a partial update; nil fields are left untouched.
func (s *userService) UpdateUser(ctx context.Context, id uint, name, email *string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}
	return s.saveUser(ctx, user)
}

// ReplaceUser overwrites name and email with the given values.
func (s *userService) ReplaceUser(ctx context.Context, id uint, name, email string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.Name = name
	user.Email = email
	return s.saveUser(ctx, user)
}

func (s *userService) saveUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

// DeleteUser removes a user permanently.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
