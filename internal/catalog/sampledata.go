package catalog

import (
	"github.com/glowandgather/storefront/internal/domain"
	"github.com/glowandgather/storefront/pkg/common"
)

// SampleProducts returns the starter catalog used to populate a fresh
// database: two candles, two room sprays and two wax melts.
func SampleProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:           common.UUIDint64(),
			Name:         "Vanilla Bean Candle",
			Category:     domain.CategoryCandles,
			Price:        450,
			Description:  "A clean-burning soy wax candle that brings out a classic vanilla aroma. Perfect for customers who love warm, inviting scents. The amber jar gives a minimalist aesthetic while protecting the fragrance from light.",
			Weight:       "150g (5.3oz)",
			Ingredients:  []string{"100% soy wax", "natural vanilla fragrance oil", "cotton wick"},
			ScentProfile: "Sweet, creamy vanilla with a warm finish",
			Uses:         "Perfect for living rooms, bedrooms, and creating cozy evening ambiance. Light the candle and let it burn for 2-3 hours at a time for optimal performance.",
			BurnTime:     "28–32 hours",
			Images:       []string{"/images/candle1.jpg", "/images/candle2.jpg"},
			InStock:      true,
			IsBestSeller: true,
			IsActive:     true,
		},
		{
			ID:           common.UUIDint64(),
			Name:         "Lavender Calm Candle",
			Category:     domain.CategoryCandles,
			Price:        500,
			Description:  "A soothing lavender candle crafted for relaxation and stress relief. The consistent slow burn and gentle scent make it ideal for night routines or peaceful ambient lighting.",
			Weight:       "180g (6.3oz)",
			Ingredients:  []string{"Soy wax", "lavender essential oil", "cotton wick"},
			ScentProfile: "Floral, calming, herbal",
			Uses:         "Best for bedtime, meditation spaces, and relaxation corners. Light 30 minutes before sleep for a calming atmosphere.",
			BurnTime:     "30–35 hours",
			Images:       []string{"/images/candle2.jpg", "/images/candle3.jpg"},
			InStock:      true,
			IsBestSeller: true,
			IsActive:     true,
		},
		{
			ID:           common.UUIDint64(),
			Name:         "Citrus Fresh Spray",
			Category:     domain.CategoryRoomSprays,
			Price:        350,
			Description:  "A lively citrus mist that quickly eliminates odor and refreshes any space. Safe for everyday use and great for customers who prefer light and uplifting fragrances.",
			BottleSize:   "100ml",
			Ingredients:  []string{"Distilled water", "citrus essential oils (orange, lemon)", "eco-safe solubilizer"},
			ScentProfile: "Bright, refreshing, energizing",
			Uses:         "Ideal for kitchen, workspace, bathroom, and car. Spray 2-3 times in the air or on fabrics. Shake well before use.",
			Images:       []string{"/images/candle3.jpg", "/images/hero-candle.jpg"},
			InStock:      true,
			IsBestSeller: true,
			IsActive:     true,
		},
		{
			ID:           common.UUIDint64(),
			Name:         "Woodland Mist Spray",
			Category:     domain.CategoryRoomSprays,
			Price:        400,
			Description:  "A calming forest-inspired room spray that adds a natural, earthy aroma. Ideal for minimalist homes with warm and neutral palettes.",
			BottleSize:   "100ml",
			Ingredients:  []string{"Distilled water", "cedarwood oil", "pine fragrance oil", "natural solubilizer"},
			ScentProfile: "Earthy, woody, grounding",
			Uses:         "Perfect for living rooms, office, and study areas. Spray into the air to create a grounding atmosphere. Avoid direct contact with furniture.",
			Images:       []string{"/images/hero-candle.jpg", "/images/candle1.jpg"},
			InStock:      true,
			IsBestSeller: false,
			IsActive:     true,
		},
		{
			ID:           common.UUIDint64(),
			Name:         "Vanilla & Cinnamon Wax Melt",
			Category:     domain.CategoryWaxMelts,
			Price:        300,
			Description:  "Perfect for customers who want a flameless option. Melts easily and fills the room with a delicious vanilla-cinnamon aroma that feels like the holidays all year.",
			Weight:       "60g",
			Ingredients:  []string{"Soy wax", "vanilla oil", "cinnamon essential oil"},
			ScentProfile: "Cozy, warm, slightly spicy",
			Uses:         "Use with wax warmers. Break off 1-2 cubes and place in warmer. Each pack provides 3-4 uses. Remove wax when scent fades.",
			Images:       []string{"/images/candle2.jpg", "/images/candle1.jpg"},
			InStock:      true,
			IsBestSeller: false,
			IsActive:     true,
		},
		{
			ID:           common.UUIDint64(),
			Name:         "Lavender & Chamomile Wax Melt",
			Category:     domain.CategoryWaxMelts,
			Price:        300,
			Description:  "A calming blend that promotes relaxation and better sleep. Melts slowly and releases a soft fragrance perfect for quiet nights.",
			Weight:       "60g",
			Ingredients:  []string{"Soy wax", "lavender essential oil", "chamomile essential oil"},
			ScentProfile: "Herbal, soothing, gentle",
			Uses:         "Best for bedrooms. Use with wax warmers, 3-4 uses per pack. Place 1-2 cubes in warmer 30 minutes before bedtime for optimal relaxation.",
			Images:       []string{"/images/candle3.jpg", "/images/candle2.jpg"},
			InStock:      true,
			IsBestSeller: false,
			IsActive:     true,
		},
	}
}
