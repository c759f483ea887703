package accounts

import (
	"context"

	"github.com/glowandgather/storefront/internal/domain"
	"gorm.io/gorm"
)

// AdminRepository handles database operations for dashboard admins
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// UserRepository handles database operations for storefront users
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// GormAdminRepository is the GORM implementation of AdminRepository
type GormAdminRepository struct {
	DB *gorm.DB
}

// NewGormAdminRepository creates a new GORM-based repository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{DB: db}
}

func (r *GormAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	return r.DB.WithContext(ctx).Create(admin).Error
}

func (r *GormAdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.DB.WithContext(ctx).First(&admin, id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormAdminRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return r.DB.WithContext(ctx).
		Model(&domain.Admin{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *GormAdminRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&domain.Admin{}, id).Error
}

func (r *GormAdminRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&domain.Admin{}).Count(&total).Error
	return total, err
}

// GormUserRepository is the GORM implementation of UserRepository
type GormUserRepository struct {
	DB *gorm.DB
}

// NewGormUserRepository creates a new GORM-based repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	var users []*domain.User
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *GormUserRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return r.DB.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&domain.User{}, id).Error
}

func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&domain.User{}).Count(&total).Error
	return total, err
}
