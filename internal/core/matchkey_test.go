package core_test

import (
	"testing"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
)

func TestStockKey_CaseAndWhitespaceInsensitive(t *testing.T) {
	tests := []struct {
		name           string
		p1, b1, p2, b2 string
		equal          bool
	}{
		{"padding and casing", "  Flour ", "Fresh", "flour", "FRESH", true},
		{"identical", "Rice", "Aroma", "Rice", "Aroma", true},
		{"different brand", "Rice", "Aroma", "Rice", "Basmati", false},
		{"brand is not part of product", "Rice Aroma", "", "Rice", "Aroma", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k1 := core.StockKey(tt.p1, tt.b1)
			k2 := core.StockKey(tt.p2, tt.b2)
			if (k1 == k2) != tt.equal {
				t.Errorf("StockKey(%q,%q)=%q vs StockKey(%q,%q)=%q, want equal=%v",
					tt.p1, tt.b1, k1, tt.p2, tt.b2, k2, tt.equal)
			}
		})
	}
}

func TestWarehouseKey_IncludesWarehouseSegment(t *testing.T) {
	if core.WarehouseKey("Flour", "Fresh", "Main GoDown") == core.WarehouseKey("Flour", "Fresh", "Second GoDown") {
		t.Fatal("distinct warehouses must produce distinct keys")
	}
	if core.WarehouseKey("Flour", "Fresh", " MAIN godown ") != core.WarehouseKey("flour", "fresh", "main godown") {
		t.Fatal("warehouse segment must normalize case and padding")
	}
}

func TestBrandMatches_FallbackRule(t *testing.T) {
	tests := []struct {
		name                       string
		saleBrand, target, product string
		want                       bool
	}{
		{"exact match", "Aroma", "Aroma", "Rice", true},
		{"case-insensitive match", " AROMA ", "aroma", "Rice", true},
		{"empty brand, target equals product", "", "Rice", "Rice", true},
		{"dash brand, target equals product", "-", "Rice", "Rice", true},
		{"empty brand, target is a real brand", "", "Aroma", "Rice", false},
		{"named brand never falls back", "Basmati", "Rice", "Rice", false},
		{"empty matches empty", "", "", "Rice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.BrandMatches(tt.saleBrand, tt.target, tt.product); got != tt.want {
				t.Errorf("BrandMatches(%q, %q, %q) = %v, want %v",
					tt.saleBrand, tt.target, tt.product, got, tt.want)
			}
		})
	}
}
