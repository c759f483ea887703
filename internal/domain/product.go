package domain

import "time"

// Product categories stored in the database.
const (
	CategoryCandles    = "CANDLES"
	CategoryRoomSprays = "ROOM_SPRAYS"
	CategoryWaxMelts   = "WAX_MELTS"
)

// categoryLabels is the single bidirectional mapping between stored enum
// values and the labels shown on the storefront. Both directions read from
// this table so the two can never drift.
var categoryLabels = []struct {
	Value string
	Label string
}{
	{CategoryCandles, "Candles"},
	{CategoryRoomSprays, "Room Sprays"},
	{CategoryWaxMelts, "Wax Melts"},
}

// CategoryFromLabel maps a display label ("Room Sprays") to its stored
// enum value.
func CategoryFromLabel(label string) (string, bool) {
	for _, c := range categoryLabels {
		if c.Label == label {
			return c.Value, true
		}
	}
	return "", false
}

// CategoryLabel maps a stored enum value back to its display label.
func CategoryLabel(value string) (string, bool) {
	for _, c := range categoryLabels {
		if c.Value == value {
			return c.Label, true
		}
	}
	return "", false
}

// ValidCategory reports whether value is one of the stored enum values.
func ValidCategory(value string) bool {
	_, ok := CategoryLabel(value)
	return ok
}

// Product represents a catalog item: a candle, room spray or wax melt.
type Product struct {
	ID           int64     `json:"id,string" form:"id"`
	Name         string    `gorm:"index" json:"name" form:"name"`
	Description  string    `gorm:"type:text" json:"description" form:"description"`
	Price        float64   `json:"price" form:"price"`
	Category     string    `gorm:"size:32;index" json:"category" form:"category"`
	Images       []string  `gorm:"serializer:json" json:"images"`
	BottleSize   string    `gorm:"size:64" json:"bottleSize,omitempty"`
	Weight       string    `gorm:"size:64" json:"weight,omitempty"`
	BurnTime     string    `gorm:"size:64" json:"burnTime,omitempty"`
	Ingredients  []string  `gorm:"serializer:json" json:"ingredients"`
	ScentProfile string    `json:"scentProfile"`
	Uses         string    `gorm:"type:text" json:"uses"`
	InStock      bool      `json:"inStock"`
	IsBestSeller bool      `gorm:"index" json:"isBestSeller"`
	IsActive     bool      `gorm:"index" json:"isActive"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "shop_product"
}
