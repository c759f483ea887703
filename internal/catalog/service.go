package catalog

import (
	"context"
	"strings"

	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/apperrors"
	"github.com/glowandgather/storefront/pkg/common"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BestSellerLimit caps how many best sellers the storefront homepage shows.
const BestSellerLimit = 3

const (
	defaultScentProfile = "Natural fragrance"
	defaultUses         = "Use as directed"
)

// Service provides catalog operations on top of ProductRepository.
type Service struct {
	repo ProductRepository
}

// NewService creates a new catalog service
func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

// CreateInput is the payload accepted from the admin product form. Category
// carries the human-readable label ("Candles"), not the stored enum value.
type CreateInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	ImageSrc     string   `json:"imageSrc"`
	BottleSize   string   `json:"bottleSize"`
	Weight       string   `json:"weight"`
	BurnTime     string   `json:"burnTime"`
	Ingredients  []string `json:"ingredients"`
	ScentProfile string   `json:"scentProfile"`
	Uses         string   `json:"uses"`
}

// ListAll returns every product, newest first.
func (s *Service) ListAll(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query products")
	}
	return products, nil
}

// ListActive returns publicly visible products, newest first.
func (s *Service) ListActive(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.Active(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "query active products")
	}
	return products, nil
}

// ListBestSellers returns up to three active products flagged for homepage
// promotion, newest first.
func (s *Service) ListBestSellers(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.BestSellers(ctx, BestSellerLimit)
	if err != nil {
		return nil, errors.Wrap(err, "query best sellers")
	}
	return products, nil
}

// GetByID returns a single product or a NotFound error.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "query product")
	}
	return product, nil
}

// Create stores a new product. The category label is mapped to its stored
// enum value, falling back to CANDLES when unmapped, and new products start
// in stock, active and not best sellers.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Validation("Product name is required")
	}

	category, ok := domain.CategoryFromLabel(input.Category)
	if !ok {
		category = domain.CategoryCandles
	}

	images := []string{}
	if input.ImageSrc != "" {
		images = append(images, input.ImageSrc)
	}
	ingredients := input.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	scentProfile := input.ScentProfile
	if scentProfile == "" {
		scentProfile = defaultScentProfile
	}
	uses := input.Uses
	if uses == "" {
		uses = defaultUses
	}

	product := &domain.Product{
		ID:           common.UUIDint64(),
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Price:        input.Price,
		Category:     category,
		Images:       images,
		BottleSize:   input.BottleSize,
		Weight:       input.Weight,
		BurnTime:     input.BurnTime,
		Ingredients:  ingredients,
		ScentProfile: scentProfile,
		Uses:         uses,
		InStock:      true,
		IsBestSeller: false,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "create product")
	}

	zap.L().Info("product created",
		zap.Int64("id", product.ID),
		zap.String("name", product.Name))
	return product, nil
}

// productPatch whitelists the fields a partial update may touch. Pointers
// distinguish absent fields from zero values.
type productPatch struct {
	Name         *string   `mapstructure:"name"`
	Description  *string   `mapstructure:"description"`
	Price        *float64  `mapstructure:"price"`
	Category     *string   `mapstructure:"category"`
	Images       *[]string `mapstructure:"images"`
	BottleSize   *string   `mapstructure:"bottleSize"`
	Weight       *string   `mapstructure:"weight"`
	BurnTime     *string   `mapstructure:"burnTime"`
	Ingredients  *[]string `mapstructure:"ingredients"`
	ScentProfile *string   `mapstructure:"scentProfile"`
	Uses         *string   `mapstructure:"uses"`
	InStock      *bool     `mapstructure:"inStock"`
	IsBestSeller *bool     `mapstructure:"isBestSeller"`
	IsActive     *bool     `mapstructure:"isActive"`
}

// Update applies a partial field patch to a product. Unknown fields are
// ignored; category accepts either a display label or a stored enum value.
func (s *Service) Update(ctx context.Context, id int64, fields map[string]interface{}) (*domain.Product, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var patch productPatch
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &patch,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "build patch decoder")
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, apperrors.Validation("Invalid product fields")
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Category != nil {
		category := *patch.Category
		if mapped, ok := domain.CategoryFromLabel(category); ok {
			category = mapped
		} else if !domain.ValidCategory(category) {
			return nil, apperrors.Validation("Unknown product category")
		}
		updates["category"] = category
	}
	if patch.Images != nil {
		updates["images"] = *patch.Images
	}
	if patch.BottleSize != nil {
		updates["bottle_size"] = *patch.BottleSize
	}
	if patch.Weight != nil {
		updates["weight"] = *patch.Weight
	}
	if patch.BurnTime != nil {
		updates["burn_time"] = *patch.BurnTime
	}
	if patch.Ingredients != nil {
		updates["ingredients"] = *patch.Ingredients
	}
	if patch.ScentProfile != nil {
		updates["scent_profile"] = *patch.ScentProfile
	}
	if patch.Uses != nil {
		updates["uses"] = *patch.Uses
	}
	if patch.InStock != nil {
		updates["in_stock"] = *patch.InStock
	}
	if patch.IsBestSeller != nil {
		updates["is_best_seller"] = *patch.IsBestSeller
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, errors.Wrap(err, "update product")
		}
	}

	zap.L().Info("product updated", zap.Int64("id", id))
	return s.GetByID(ctx, id)
}

// Delete removes a product permanently. There is no soft delete.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete product")
	}
	zap.L().Info("product deleted", zap.Int64("id", id))
	return nil
}

// ToggleBestSeller flips the homepage promotion flag and returns the
// updated product.
func (s *Service) ToggleBestSeller(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"is_best_seller": !product.IsBestSeller}); err != nil {
		return nil, errors.Wrap(err, "toggle best seller")
	}
	return s.GetByID(ctx, id)
}

// ToggleActive flips the public visibility flag and returns the updated
// product. Inactive products stay in storage but disappear from the
// storefront listings.
func (s *Service) ToggleActive(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"is_active": !product.IsActive}); err != nil {
		return nil, errors.Wrap(err, "toggle active")
	}
	return s.GetByID(ctx, id)
}

// Count returns the catalog size.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Seed wipes the product table and repopulates it. Development utility
// behind the debug flag.
func (s *Service) Seed(ctx context.Context, products []*domain.Product) error {
	for _, p := range products {
		if p.ID == 0 {
			p.ID = common.UUIDint64()
		}
	}
	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		return errors.Wrap(err, "seed products")
	}
	zap.L().Warn("product table reseeded", zap.Int("count", len(products)))
	return nil
}
