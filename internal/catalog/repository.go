package catalog

import (
	"context"

	"github.com/glowandgather/storefront/internal/domain"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for catalog products
type ProductRepository interface {
	// Create inserts a new product
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// All retrieves every product, newest first
	All(ctx context.Context) ([]*domain.Product, error)

	// Active retrieves publicly visible products, newest first
	Active(ctx context.Context) ([]*domain.Product, error)

	// BestSellers retrieves active best-seller products, newest first
	BestSellers(ctx context.Context, limit int) ([]*domain.Product, error)

	// Update applies a partial column patch to a product
	Update(ctx context.Context, id int64, updates map[string]interface{}) error

	// Delete removes a product
	Delete(ctx context.Context, id int64) error

	// ReplaceAll wipes the product table and inserts the given products
	ReplaceAll(ctx context.Context, products []*domain.Product) error

	// Count returns the total number of products
	Count(ctx context.Context) (int64, error)
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	DB *gorm.DB
}

// NewGormProductRepository creates a new GORM-based repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{DB: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.DB.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) All(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Active(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) BestSellers(ctx context.Context, limit int) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.DB.WithContext(ctx).
		Where("is_best_seller = ? AND is_active = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	return r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) ReplaceAll(ctx context.Context, products []*domain.Product) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Product{}).Error; err != nil {
			return err
		}
		for _, p := range products {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error
	return total, err
}
