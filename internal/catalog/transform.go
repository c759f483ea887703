package catalog

import (
	"strings"

	"github.com/glowandgather/storefront/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultImage is shown when a product carries no images of its own.
const DefaultImage = "/images/candle1.jpg"

var titleCaser = cases.Title(language.English)

// FrontendProduct is the flattened shape the storefront consumes: category
// as a display label and the first image aliased as imageSrc next to the
// full image list.
type FrontendProduct struct {
	ID           int64    `json:"id,string"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	ImageSrc     string   `json:"imageSrc"`
	Images       []string `json:"images"`
	BottleSize   string   `json:"bottleSize,omitempty"`
	Weight       string   `json:"weight,omitempty"`
	BurnTime     string   `json:"burnTime,omitempty"`
	Ingredients  []string `json:"ingredients"`
	ScentProfile string   `json:"scentProfile"`
	Uses         string   `json:"uses"`
	InStock      bool     `json:"inStock"`
	IsBestSeller bool     `json:"isBestSeller"`
	IsActive     bool     `json:"isActive"`
}

// TransformForFrontend reshapes a stored product into its storefront form.
func TransformForFrontend(product *domain.Product) FrontendProduct {
	imageSrc := DefaultImage
	if len(product.Images) > 0 {
		imageSrc = product.Images[0]
	}
	return FrontendProduct{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        product.Price,
		Category:     displayCategory(product.Category),
		ImageSrc:     imageSrc,
		Images:       product.Images,
		BottleSize:   product.BottleSize,
		Weight:       product.Weight,
		BurnTime:     product.BurnTime,
		Ingredients:  product.Ingredients,
		ScentProfile: product.ScentProfile,
		Uses:         product.Uses,
		InStock:      product.InStock,
		IsBestSeller: product.IsBestSeller,
		IsActive:     product.IsActive,
	}
}

// TransformAll reshapes a product slice for the storefront.
func TransformAll(products []*domain.Product) []FrontendProduct {
	out := make([]FrontendProduct, 0, len(products))
	for _, p := range products {
		out = append(out, TransformForFrontend(p))
	}
	return out
}

// displayCategory resolves the display label for a stored category value.
// Values outside the known enum are title-cased ("GIFT_SETS" -> "Gift
// Sets") so stale rows still render.
func displayCategory(value string) string {
	if label, ok := domain.CategoryLabel(value); ok {
		return label
	}
	return titleCaser.String(strings.ToLower(strings.ReplaceAll(value, "_", " ")))
}
