package services

import (
	"context"

	"github.com/oalia/scholarsite/internal/app/models"
	"github.com/oalia/scholarsite/internal/app/repositories"
	"github.com/oalia/scholarsite/internal/pkg/apperrors"
	"github.com/oalia/scholarsite/internal/pkg/auth"
	"github.com/oalia/scholarsite/internal/pkg/validation"
	"github.com/oalia/scholarsite/internal/querycache"
)

// UserService handles user account management.
type UserService struct {
	userRepo *repositories.UserRepository
	cache    *querycache.Cache
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, cache *querycache.Cache) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// List returns all user accounts.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	res := s.cache.Query(ctx, querycache.UsersKey(), func(ctx context.Context) (interface{}, error) {
		return s.userRepo.GetAll(ctx)
	})
	if res.Data == nil {
		return nil, res.Err
	}
	return res.Data.([]*models.User), res.Err
}

// GetByID returns a single user account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Create hashes the password and persists a new user account.
func (s *UserService) Create(ctx context.Context, u *models.User, password string) (int64, error) {
	if !validation.IsValidEmail(u.Email) {
		return 0, apperrors.NewValidationError("email", "invalid email address")
	}
	if !validation.IsValidPassword(password) {
		return 0, apperrors.NewValidationError("password", "password must be at least 8 characters")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}
	u.Password = hashed
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Status == "" {
		u.Status = models.UserStatusActive
	}

	var id int64
	err = s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.userRepo.Create(ctx, u)
		return err
	}, querycache.ByEntity(querycache.EntityUsers))
	return id, err
}

// Update persists profile changes to an existing user account.
func (s *UserService) Update(ctx context.Context, u *models.User) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.userRepo.Update(ctx, u)
	}, querycache.ByEntity(querycache.EntityUsers))
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.userRepo.Delete(ctx, id)
	}, querycache.ByEntity(querycache.EntityUsers))
}
