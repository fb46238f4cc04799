package core

import "github.com/shopspring/decimal"

// ── Stock movement report ─────────────────────────────────────────────────────

// WarehouseQty is one warehouse's share of a product/brand's stock.
type WarehouseQty struct {
	WarehouseName string          `json:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// StockMovementRow summarizes one (product, brand) key: what arrived under
// LCs, what fell short, what was sold, and where the rest sits now.
// RawInHouse is the unclamped balance; a negative value flags a data problem
// that the clamped InHouse column hides.
type StockMovementRow struct {
	ProductName string          `json:"product_name"`
	Brand       string          `json:"brand"`
	Unit        string          `json:"unit"`
	PacketSize  decimal.Decimal `json:"packet_size"`
	Arrived     decimal.Decimal `json:"arrived"`
	Shortage    decimal.Decimal `json:"shortage"`
	Sold        decimal.Decimal `json:"sold"`
	InHouse     decimal.Decimal `json:"in_house"`
	RawInHouse  decimal.Decimal `json:"raw_in_house"`
	Warehouses  []WarehouseQty  `json:"warehouses"`
}

// StockMovementTotals is the grand-total row of the movement report.
type StockMovementTotals struct {
	Arrived  decimal.Decimal `json:"arrived"`
	Shortage decimal.Decimal `json:"shortage"`
	Sold     decimal.Decimal `json:"sold"`
	InHouse  decimal.Decimal `json:"in_house"`
}

type StockMovementReport struct {
	Rows   []StockMovementRow  `json:"rows"`
	Totals StockMovementTotals `json:"totals"`
}

// BuildStockMovementReport derives the movement report from a record
// snapshot. One row per distinct (product, brand) key in first-seen receipt
// order; the filter narrows receipts, transfers, and sale lines alike before
// any aggregation.
func BuildStockMovementReport(receipts []ReceiptRecord, transfers []WarehouseTransferRecord, sales []LineItem, f Filter) *StockMovementReport {
	receipts = filterReceipts(receipts, f)
	transfers = filterTransfers(transfers, f)
	sales = filterSaleLines(sales, f)

	cache := NewBalanceCache(receipts, transfers, sales)
	report := &StockMovementReport{}

	seen := make(map[string]int)
	for _, r := range receipts {
		key := StockKey(r.ProductName, r.Brand)
		if i, ok := seen[key]; ok {
			row := &report.Rows[i]
			row.Arrived = row.Arrived.Add(parseQty(r.Quantity))
			row.Shortage = row.Shortage.Add(parseQty(r.ShortageQuantity))
			if row.PacketSize.IsZero() {
				row.PacketSize = parseQty(r.PacketSize)
			}
			continue
		}
		seen[key] = len(report.Rows)
		report.Rows = append(report.Rows, StockMovementRow{
			ProductName: r.ProductName,
			Brand:       r.Brand,
			Unit:        r.Unit,
			PacketSize:  parseQty(r.PacketSize),
			Arrived:     parseQty(r.Quantity),
			Shortage:    parseQty(r.ShortageQuantity),
		})
	}

	for i := range report.Rows {
		row := &report.Rows[i]
		row.RawInHouse = RawInHouseBalance(row.ProductName, row.Brand, receipts, transfers, sales)
		row.InHouse = cache.InHouse(row.ProductName, row.Brand)

		for _, line := range sales {
			if saleLineMatches(line, row.ProductName, row.Brand) {
				row.Sold = row.Sold.Add(line.Quantity)
			}
		}

		for _, wh := range distinctWarehouses(transfers, row.ProductName, row.Brand) {
			row.Warehouses = append(row.Warehouses, WarehouseQty{
				WarehouseName: wh,
				Quantity:      cache.Warehouse(row.ProductName, row.Brand, wh),
			})
		}

		report.Totals.Arrived = report.Totals.Arrived.Add(row.Arrived)
		report.Totals.Shortage = report.Totals.Shortage.Add(row.Shortage)
		report.Totals.Sold = report.Totals.Sold.Add(row.Sold)
		report.Totals.InHouse = report.Totals.InHouse.Add(row.InHouse)
	}
	return report
}

// ── Warehouse stock report ────────────────────────────────────────────────────

// WarehouseStockRow is the balance of one (product, brand) inside one group's
// warehouse.
type WarehouseStockRow struct {
	ProductName   string          `json:"product_name"`
	Brand         string          `json:"brand"`
	Quantity      decimal.Decimal `json:"quantity"`
	Packets       decimal.Decimal `json:"packets"`
	PacketDisplay string          `json:"packet_display"`
}

// WarehouseStockGroup is one warehouse's section of the report. Subtotal is
// nil for single-row groups per the subtotal emission rule.
type WarehouseStockGroup struct {
	WarehouseName string              `json:"warehouse_name"`
	Rows          []WarehouseStockRow `json:"rows"`
	Subtotal      *RowTotals          `json:"subtotal,omitempty"`
}

type WarehouseStockReport struct {
	Groups     []WarehouseStockGroup `json:"groups"`
	GrandTotal RowTotals             `json:"grand_total"`
}

// BuildWarehouseStockReport groups current balances by warehouse. Warehouses
// and their (product, brand) rows appear in first-seen transfer order. Packet
// counts net transfers in against sale lines out, floored at zero like the
// quantity balance.
func BuildWarehouseStockReport(transfers []WarehouseTransferRecord, sales []LineItem, f Filter) *WarehouseStockReport {
	transfers = filterTransfers(transfers, f)
	sales = filterSaleLines(sales, f)

	report := &WarehouseStockReport{}
	groupIdx := make(map[string]int)
	rowIdx := make(map[string]bool)

	for _, t := range transfers {
		whKey := normKey(t.WarehouseName)
		gi, ok := groupIdx[whKey]
		if !ok {
			gi = len(report.Groups)
			groupIdx[whKey] = gi
			report.Groups = append(report.Groups, WarehouseStockGroup{WarehouseName: t.WarehouseName})
		}

		key := WarehouseKey(t.ProductName, t.Brand, t.WarehouseName)
		if rowIdx[key] {
			continue
		}
		rowIdx[key] = true

		packets := decimal.Zero
		for _, o := range transfers {
			if WarehouseKey(o.ProductName, o.Brand, o.WarehouseName) == key {
				packets = packets.Add(parseQty(o.Packets))
			}
		}
		for _, line := range sales {
			if normKey(line.WarehouseName) == whKey && saleLineMatches(line, t.ProductName, t.Brand) {
				packets = packets.Sub(line.PacketCount)
			}
		}

		report.Groups[gi].Rows = append(report.Groups[gi].Rows, WarehouseStockRow{
			ProductName:   t.ProductName,
			Brand:         t.Brand,
			Quantity:      WarehouseBalance(t.ProductName, t.Brand, t.WarehouseName, transfers, sales),
			Packets:       clampZero(packets),
			PacketDisplay: FormatPackets(clampZero(packets), decimal.Zero, decimal.Zero, ""),
		})
	}

	for gi := range report.Groups {
		group := &report.Groups[gi]
		rows := make([]RowTotals, len(group.Rows))
		for i, r := range group.Rows {
			rows[i] = RowTotals{Quantity: r.Quantity, Packets: r.Packets}
		}
		group.Subtotal = SubtotalFor(rows)
		report.GrandTotal = report.GrandTotal.Add(GrandTotal(rows))
	}
	return report
}

// ── Product history report ────────────────────────────────────────────────────

// ProductHistoryReport is the unified purchase/sale ledger for one product,
// with column totals per side and the closing running balance.
type ProductHistoryReport struct {
	ProductName    string          `json:"product_name"`
	Entries        []LedgerEntry   `json:"entries"`
	PurchaseTotals RowTotals       `json:"purchase_totals"`
	SaleTotals     RowTotals       `json:"sale_totals"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// BuildProductHistoryReport builds the ledger for f.Product and totals its
// two sides. The closing balance is the last entry's running balance and may
// be negative — the history view surfaces what the live balances clamp away.
func BuildProductHistoryReport(receipts []ReceiptRecord, sales []LineItem, f Filter) *ProductHistoryReport {
	report := &ProductHistoryReport{ProductName: f.Product}
	report.Entries = BuildUnifiedLedger(receipts, sales, f)

	for _, e := range report.Entries {
		switch e.Type {
		case LedgerPurchase:
			report.PurchaseTotals.Quantity = report.PurchaseTotals.Quantity.Add(e.Quantity)
			report.PurchaseTotals.Shortage = report.PurchaseTotals.Shortage.Add(e.ShortageQty)
		case LedgerSale:
			report.SaleTotals.Quantity = report.SaleTotals.Quantity.Add(e.Quantity)
		}
	}
	if n := len(report.Entries); n > 0 {
		report.ClosingBalance = report.Entries[n-1].RunningBalance
	}
	return report
}

// ── Shared helpers ────────────────────────────────────────────────────────────

func filterReceipts(receipts []ReceiptRecord, f Filter) []ReceiptRecord {
	out := make([]ReceiptRecord, 0, len(receipts))
	for _, r := range receipts {
		if f.matchesReceipt(r) {
			out = append(out, r)
		}
	}
	return out
}

func filterTransfers(transfers []WarehouseTransferRecord, f Filter) []WarehouseTransferRecord {
	out := make([]WarehouseTransferRecord, 0, len(transfers))
	for _, t := range transfers {
		if f.matchesTransfer(t) {
			out = append(out, t)
		}
	}
	return out
}

func filterSaleLines(lines []LineItem, f Filter) []LineItem {
	out := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		if f.matchesSaleLine(l) {
			out = append(out, l)
		}
	}
	return out
}

// distinctWarehouses lists warehouse names holding (product, brand) in
// first-seen transfer order.
func distinctWarehouses(transfers []WarehouseTransferRecord, product, brand string) []string {
	key := StockKey(product, brand)
	seen := make(map[string]bool)
	var names []string
	for _, t := range transfers {
		if StockKey(t.ProductName, t.Brand) != key {
			continue
		}
		wh := normKey(t.WarehouseName)
		if !seen[wh] {
			seen[wh] = true
			names = append(names, t.WarehouseName)
		}
	}
	return names
}
