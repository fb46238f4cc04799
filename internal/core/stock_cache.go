package core

import "github.com/shopspring/decimal"

// BalanceCache memoizes balance computations over one immutable snapshot of
// the record slices. The original application recomputed every balance on
// every screen refresh; here the caller builds one cache per snapshot and
// discards it when the underlying records change — the snapshot itself is the
// invalidation boundary.
//
// A BalanceCache is not safe for concurrent use. Each report computation
// builds its own.
type BalanceCache struct {
	receipts  []ReceiptRecord
	transfers []WarehouseTransferRecord
	sales     []LineItem

	inHouse   map[string]decimal.Decimal
	warehouse map[string]decimal.Decimal
}

// NewBalanceCache builds a cache over the given snapshot. The caller must not
// mutate the slices afterwards.
func NewBalanceCache(receipts []ReceiptRecord, transfers []WarehouseTransferRecord, sales []LineItem) *BalanceCache {
	return &BalanceCache{
		receipts:  receipts,
		transfers: transfers,
		sales:     sales,
		inHouse:   make(map[string]decimal.Decimal),
		warehouse: make(map[string]decimal.Decimal),
	}
}

// InHouse returns the memoized clamped in-house balance for (product, brand).
func (c *BalanceCache) InHouse(product, brand string) decimal.Decimal {
	key := StockKey(product, brand)
	if bal, ok := c.inHouse[key]; ok {
		return bal
	}
	bal := InHouseBalance(product, brand, c.receipts, c.transfers, c.sales)
	c.inHouse[key] = bal
	return bal
}

// Warehouse returns the memoized balance for (product, brand, warehouse).
func (c *BalanceCache) Warehouse(product, brand, warehouse string) decimal.Decimal {
	key := WarehouseKey(product, brand, warehouse)
	if bal, ok := c.warehouse[key]; ok {
		return bal
	}
	bal := WarehouseBalance(product, brand, warehouse, c.transfers, c.sales)
	c.warehouse[key] = bal
	return bal
}
