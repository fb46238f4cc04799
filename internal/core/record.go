package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ReceiptRecord is one line of a letter-of-credit (LC) goods receipt.
// Quantity fields are kept as raw strings: legacy records frequently carry
// blank or non-numeric values, which parse to zero rather than erroring.
type ReceiptRecord struct {
	ID               int    `json:"id"`
	Date             string `json:"date"` // YYYY-MM-DD
	LCNo             string `json:"lc_no"`
	ProductName      string `json:"product_name"`
	Brand            string `json:"brand"`
	Quantity         string `json:"quantity"`           // declared as arrived
	InHouseQuantity  string `json:"in_house_quantity"`  // arrived minus shortage, when pre-computed
	ShortageQuantity string `json:"shortage_quantity"`
	InHousePackets   string `json:"in_house_packets"`
	PacketCount      string `json:"packet_count"`
	PacketSize       string `json:"packet_size"`
	Unit             string `json:"unit"`
	UnitPrice        string `json:"unit_price"`
}

// InHouseQty resolves the verified in-house quantity for a receipt.
// Resolution order: the pre-computed field when present, then packet count
// times packet size when a positive packet size is known, then declared
// quantity minus shortage. All three levels must stay in this order —
// downstream balances depend on it.
func (r ReceiptRecord) InHouseQty() decimal.Decimal {
	if strings.TrimSpace(r.InHouseQuantity) != "" {
		return parseQty(r.InHouseQuantity)
	}
	if size := parseQty(r.PacketSize); size.IsPositive() {
		return parseQty(r.InHousePackets).Mul(size)
	}
	return parseQty(r.Quantity).Sub(parseQty(r.ShortageQuantity))
}

// WarehouseTransferRecord is physical stock moved into a named warehouse.
// Transfers are additive across warehouses; the in-house pool is not.
type WarehouseTransferRecord struct {
	ID            int    `json:"id"`
	Date          string `json:"date"`
	ProductName   string `json:"product_name"`
	Brand         string `json:"brand"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      string `json:"quantity"`
	Packets       string `json:"packets"`
}

// SaleRecord is one sale memo. Newer records nest Items[].BrandEntries[];
// legacy records carry a single product in the flat fields instead.
type SaleRecord struct {
	ID          int        `json:"id"`
	Date        string     `json:"date"`
	InvoiceNo   string     `json:"invoice_no"`
	CompanyName string     `json:"company_name"`
	Items       []SaleItem `json:"items"`

	// Legacy flat shape, used only when Items is empty.
	ProductName   string `json:"product_name,omitempty"`
	Brand         string `json:"brand,omitempty"`
	WarehouseName string `json:"warehouse_name,omitempty"`
	Quantity      string `json:"quantity,omitempty"`
	UnitPrice     string `json:"unit_price,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
}

// SaleItem is one product line within a sale.
type SaleItem struct {
	ProductName  string       `json:"product_name"`
	BrandEntries []BrandEntry `json:"brand_entries"`

	// Flat fallback fields for items recorded without brand entries.
	Brand         string `json:"brand,omitempty"`
	WarehouseName string `json:"warehouse_name,omitempty"`
	Quantity      string `json:"quantity,omitempty"`
	UnitPrice     string `json:"unit_price,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
	PacketCount   string `json:"packet_count,omitempty"`
	PacketSize    string `json:"packet_size,omitempty"`
}

// BrandEntry is one (brand, warehouse, quantity, price) tuple within a sale item.
type BrandEntry struct {
	Brand         string `json:"brand"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      string `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	TotalAmount   string `json:"total_amount"`
	PacketCount   string `json:"packet_count,omitempty"`
	PacketSize    string `json:"packet_size,omitempty"`
}

// LineItem is the normalized unit of computation: one sale brand entry with
// its parent product, memo, and counterparty context flattened in. Derived
// fresh from SaleRecords on every computation, never persisted.
type LineItem struct {
	Date          string
	InvoiceNo     string
	CompanyName   string
	ProductName   string
	Brand         string
	WarehouseName string
	Quantity      decimal.Decimal
	PacketCount   decimal.Decimal
	PacketSize    decimal.Decimal
	UnitPrice     decimal.Decimal
	TotalAmount   decimal.Decimal
}

// FlattenSaleLines converts raw sale records of either shape into one LineItem
// per (item, brand entry) pair. Records without Items synthesize a single item
// from the flat fields; items without BrandEntries synthesize a single entry
// the same way. No line is dropped or deduplicated — multiplicities feed the
// aggregation sums. A missing product name yields an empty key that matches
// nothing downstream, which is the intended failure mode.
func FlattenSaleLines(sales []SaleRecord) []LineItem {
	var lines []LineItem
	for _, sale := range sales {
		items := sale.Items
		if len(items) == 0 {
			items = []SaleItem{{
				ProductName:   sale.ProductName,
				Brand:         sale.Brand,
				WarehouseName: sale.WarehouseName,
				Quantity:      sale.Quantity,
				UnitPrice:     sale.UnitPrice,
				TotalAmount:   sale.TotalAmount,
			}}
		}
		for _, item := range items {
			entries := item.BrandEntries
			if len(entries) == 0 {
				entries = []BrandEntry{{
					Brand:         item.Brand,
					WarehouseName: item.WarehouseName,
					Quantity:      item.Quantity,
					UnitPrice:     item.UnitPrice,
					TotalAmount:   item.TotalAmount,
					PacketCount:   item.PacketCount,
					PacketSize:    item.PacketSize,
				}}
			}
			for _, entry := range entries {
				lines = append(lines, LineItem{
					Date:          sale.Date,
					InvoiceNo:     sale.InvoiceNo,
					CompanyName:   sale.CompanyName,
					ProductName:   item.ProductName,
					Brand:         entry.Brand,
					WarehouseName: entry.WarehouseName,
					Quantity:      parseQty(entry.Quantity),
					PacketCount:   parseQty(entry.PacketCount),
					PacketSize:    parseQty(entry.PacketSize),
					UnitPrice:     parseQty(entry.UnitPrice),
					TotalAmount:   parseQty(entry.TotalAmount),
				})
			}
		}
	}
	return lines
}

// parseQty parses a quantity or amount field permissively: blank and
// non-numeric values become zero. Core computations never reject a record.
func parseQty(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
