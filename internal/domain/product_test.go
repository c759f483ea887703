package domain

import "testing"

func TestCategoryMappingRoundTrip(t *testing.T) {
	labels := map[string]string{
		CategoryCandles:    "Candles",
		CategoryRoomSprays: "Room Sprays",
		CategoryWaxMelts:   "Wax Melts",
	}
	for value, label := range labels {
		got, found := CategoryLabel(value)
		if !found || got != label {
			t.Errorf("CategoryLabel(%q) = %q, %v", value, got, found)
		}
		back, found := CategoryFromLabel(label)
		if !found || back != value {
			t.Errorf("CategoryFromLabel(%q) = %q, %v", label, back, found)
		}
	}
}

func TestCategoryUnknown(t *testing.T) {
	if _, found := CategoryFromLabel("Soaps"); found {
		t.Error("unknown label must not map")
	}
	if _, found := CategoryLabel("SOAPS"); found {
		t.Error("unknown value must not map")
	}
	if ValidCategory("SOAPS") {
		t.Error("unknown value must not validate")
	}
}
