package core

import "strings"

// Matching keys correlate receipts, transfers, and sale lines even when the
// same product or brand was entered with different casing or padding. The
// exact same normalization must be used on every side of a comparison.

// normKey lowercases and trims one key segment.
func normKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// StockKey is the composite in-house key for a (product, brand) pair.
func StockKey(product, brand string) string {
	return normKey(product) + "|" + normKey(brand)
}

// WarehouseKey is the composite key for a (product, brand, warehouse) triple.
func WarehouseKey(product, brand, warehouse string) string {
	return StockKey(product, brand) + "|" + normKey(warehouse)
}

// blankBrand reports whether a brand value is the legacy "no brand" marker:
// empty after trimming, or the literal "-".
func blankBrand(brand string) bool {
	b := normKey(brand)
	return b == "" || b == "-"
}

// BrandMatches reports whether a sale's brand counts against the target
// (product, brand) stock key. Besides the exact key match, a blank sale brand
// matches when the target brand equals the product name — legacy single-brand
// products were recorded without an explicit brand, under a key of
// product|product. This fallback applies everywhere brand matching occurs.
func BrandMatches(saleBrand, targetBrand, targetProduct string) bool {
	if normKey(saleBrand) == normKey(targetBrand) {
		return true
	}
	return blankBrand(saleBrand) && normKey(targetBrand) == normKey(targetProduct)
}

// saleLineMatches reports whether a normalized sale line decrements the
// in-house balance for (product, brand).
func saleLineMatches(line LineItem, product, brand string) bool {
	if normKey(line.ProductName) != normKey(product) {
		return false
	}
	return BrandMatches(line.Brand, brand, product)
}
