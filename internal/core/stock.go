package core

import "github.com/shopspring/decimal"

// Stock aggregation. All functions here are pure mappings over the record
// slices they are handed: no I/O, no shared state, identical output for
// identical input. The presentation layer may therefore call them as often
// as it likes, or memoize them through BalanceCache.

// RawInHouseBalance returns the unclamped in-house balance for one
// (product, brand) key:
//
//	Σ matching receipts' in-house quantity
//	+ Σ matching transfers' quantity
//	− Σ matching sale lines' quantity
//
// A negative result means a sale was recorded without a covering receipt.
// Displays use InHouseBalance; the raw value exists for diagnostics.
func RawInHouseBalance(product, brand string, receipts []ReceiptRecord, transfers []WarehouseTransferRecord, sales []LineItem) decimal.Decimal {
	key := StockKey(product, brand)
	bal := decimal.Zero

	for _, r := range receipts {
		if StockKey(r.ProductName, r.Brand) == key {
			bal = bal.Add(r.InHouseQty())
		}
	}
	for _, t := range transfers {
		if StockKey(t.ProductName, t.Brand) == key {
			bal = bal.Add(parseQty(t.Quantity))
		}
	}
	for _, line := range sales {
		if saleLineMatches(line, product, brand) {
			bal = bal.Sub(line.Quantity)
		}
	}
	return bal
}

// InHouseBalance is RawInHouseBalance floored at zero. Negative stock is not
// representable in the live balance views.
func InHouseBalance(product, brand string, receipts []ReceiptRecord, transfers []WarehouseTransferRecord, sales []LineItem) decimal.Decimal {
	return clampZero(RawInHouseBalance(product, brand, receipts, transfers, sales))
}

// WarehouseBalance returns the non-negative stock of (product, brand) held in
// one named warehouse: transfers into it minus sale lines shipped from it.
// Unlike the shared in-house pool, warehouse balances are additive across
// distinct warehouse names — stock in separate physical locations.
func WarehouseBalance(product, brand, warehouse string, transfers []WarehouseTransferRecord, sales []LineItem) decimal.Decimal {
	key := WarehouseKey(product, brand, warehouse)
	bal := decimal.Zero

	for _, t := range transfers {
		if WarehouseKey(t.ProductName, t.Brand, t.WarehouseName) == key {
			bal = bal.Add(parseQty(t.Quantity))
		}
	}
	for _, line := range sales {
		if normKey(line.WarehouseName) == normKey(warehouse) && saleLineMatches(line, product, brand) {
			bal = bal.Sub(line.Quantity)
		}
	}
	return clampZero(bal)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
