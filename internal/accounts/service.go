package accounts

import (
	"context"
	"strings"
	"time"

	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/glowandgather/storefront/pkg/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLength = 8
	minNameLength     = 2
)

// credentialsMessage is deliberately identical for unknown email and bad
// password so a caller cannot tell which one failed.
const credentialsMessage = "Invalid email or password"

// AdminService provides dashboard account management. Passwords are
// bcrypt-hashed before storage; plaintext is never persisted or logged, and
// returned records carry an empty hash.
type AdminService struct {
	repo AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// AdminUpdateInput carries the optional fields of a partial admin update.
type AdminUpdateInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates a new admin account after validating email shape,
// password length, name length and email uniqueness.
func (s *AdminService) Register(ctx context.Context, email, password, name string) (*domain.Admin, error) {
	email = strings.TrimSpace(email)
	if !common.IsValidEmail(email) {
		return nil, apperrors.Validation("Invalid email format")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.Validation("Password must be at least 8 characters long")
	}
	if len(strings.TrimSpace(name)) < minNameLength {
		return nil, apperrors.Validation("Name must be at least 2 characters long")
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.Validation("Admin with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "query admin by email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	admin := &domain.Admin{
		ID:       common.UUIDint64(),
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "create admin")
	}

	zap.L().Info("admin registered", zap.Int64("id", admin.ID), zap.String("email", admin.Email))
	return sanitize(admin), nil
}

// Login verifies credentials and returns the matching admin. Unknown email
// and wrong password fail with the same generic message.
func (s *AdminService) Login(ctx context.Context, email, password string) (*domain.Admin, error) {
	if email == "" || password == "" {
		return nil, apperrors.Unauthorized("Email and password are required")
	}

	admin, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Unauthorized(credentialsMessage)
	}
	if err != nil {
		return nil, errors.Wrap(err, "query admin by email")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, apperrors.Unauthorized(credentialsMessage)
	}

	if err := s.repo.Update(ctx, admin.ID, map[string]interface{}{"last_login": time.Now()}); err != nil {
		zap.L().Warn("failed to update last login", zap.Int64("id", admin.ID), zap.Error(err))
	}
	zap.L().Info("admin logged in", zap.Int64("id", admin.ID))
	return sanitize(admin), nil
}

// GetByID returns a single admin or a NotFound error.
func (s *AdminService) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Admin not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "query admin")
	}
	return sanitize(admin), nil
}

// Update applies a partial update, re-validating any changed email,
// password or name. Taking another admin's email is rejected.
func (s *AdminService) Update(ctx context.Context, id int64, input AdminUpdateInput) (*domain.Admin, error) {
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
			return nil, apperrors.Validation("Email already taken")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "query admin by email")
		}
		updates["email"] = email
	}
	if input.Password != "" {
		if len(input.Password) < minPasswordLength {
			return nil, apperrors.Validation("Password must be at least 8 characters long")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.Wrap(err, "hash password")
		}
		updates["password"] = string(hashed)
	}
	if input.Name != "" {
		if len(strings.TrimSpace(input.Name)) < minNameLength {
			return nil, apperrors.Validation("Name must be at least 2 characters long")
		}
		updates["name"] = strings.TrimSpace(input.Name)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, errors.Wrap(err, "update admin")
		}
	}

	zap.L().Info("admin updated", zap.Int64("id", id))
	return s.GetByID(ctx, id)
}

// Delete removes an admin account. The last remaining admin cannot be
// deleted; that would lock everyone out of the dashboard.
func (s *AdminService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "count admins")
	}
	if total <= 1 {
		return apperrors.BusinessRule("Cannot delete the last admin account")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete admin")
	}
	zap.L().Info("admin deleted", zap.Int64("id", id))
	return nil
}

// Count returns the number of admin accounts.
func (s *AdminService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func sanitize(admin *domain.Admin) *domain.Admin {
	out := *admin
	out.Password = ""
	return &out
}
