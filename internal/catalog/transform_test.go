package catalog

import (
	"testing"

	"github.com/glowandgather/storefront/internal/domain"
)

func TestTransformImageSrc(t *testing.T) {
	withImages := &domain.Product{
		Images: []string{"/images/a.jpg", "/images/b.jpg"},
	}
	got := TransformForFrontend(withImages)
	if got.ImageSrc != "/images/a.jpg" {
		t.Errorf("imageSrc = %q, want first image", got.ImageSrc)
	}

	noImages := &domain.Product{}
	got = TransformForFrontend(noImages)
	if got.ImageSrc != DefaultImage {
		t.Errorf("imageSrc = %q, want default %q", got.ImageSrc, DefaultImage)
	}
}

func TestTransformCategoryLabel(t *testing.T) {
	cases := []struct {
		stored string
		want   string
	}{
		{domain.CategoryCandles, "Candles"},
		{domain.CategoryRoomSprays, "Room Sprays"},
		{domain.CategoryWaxMelts, "Wax Melts"},
		{"GIFT_SETS", "Gift Sets"},
	}
	for _, tc := range cases {
		got := TransformForFrontend(&domain.Product{Category: tc.stored})
		if got.Category != tc.want {
			t.Errorf("category %q -> %q, want %q", tc.stored, got.Category, tc.want)
		}
	}
}

func TestTransformAllKeepsOrder(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Name: "first"},
		{ID: 2, Name: "second"},
	}
	out := TransformAll(products)
	if len(out) != 2 || out[0].Name != "first" || out[1].Name != "second" {
		t.Errorf("unexpected transform result: %+v", out)
	}
}
