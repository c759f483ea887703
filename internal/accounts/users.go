package accounts

import (
	"context"
	"strings"

	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/glowandgather/storefront/pkg/common"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserService provides storefront customer profile management. No routed
// storefront feature consumes these yet; the admin API exposes them for
// upcoming account features.
type UserService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// UserInput carries user profile fields for create and update.
type UserInput struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UserPage is one page of the user listing.
type UserPage struct {
	Users []*domain.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// Create stores a new user profile, rejecting duplicate emails.
func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if !common.IsValidEmail(email) {
		return nil, apperrors.Validation("Invalid email format")
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.Validation("User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "query user by email")
	}

	user := &domain.User{
		ID:      common.UUIDint64(),
		Email:   email,
		Name:    strings.TrimSpace(input.Name),
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}

// GetByID returns a single user or a NotFound error.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("User not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "query user")
	}
	return user, nil
}

// List returns one page of users, newest first.
func (s *UserService) List(ctx context.Context, page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count users")
	}
	users, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query users")
	}
	return &UserPage{Users: users, Total: total, Page: page, Limit: limit}, nil
}

// Update applies a partial update, rejecting an email already used by a
// different user.
func (s *UserService) Update(ctx context.Context, id int64, input UserInput) (*domain.User, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Email != "" {
		email := strings.TrimSpace(input.Email)
		if !common.IsValidEmail(email) {
			return nil, apperrors.Validation("Invalid email format")
		}
		existing, err := s.repo.GetByEmail(ctx, email)
		if err == nil && existing.ID != id {
			return nil, apperrors.Validation("Email is already in use by another user")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "query user by email")
		}
		updates["email"] = email
	}
	if input.Name != "" {
		updates["name"] = strings.TrimSpace(input.Name)
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, errors.Wrap(err, "update user")
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes a user profile.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete user")
	}
	return nil
}

// IsEmailAvailable reports whether no user currently holds the email.
func (s *UserService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "query user by email")
	}
	return false, nil
}
