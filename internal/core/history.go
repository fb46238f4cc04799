package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

type LedgerEntryType string

const (
	LedgerPurchase LedgerEntryType = "purchase"
	LedgerSale     LedgerEntryType = "sale"
)

// LedgerEntry is one event in a product's unified purchase/sale history.
// Effect is the signed quantity applied to the balance (positive for
// purchases, negative for sales); RunningBalance is the cumulative in-house
// quantity after this event. The running balance is deliberately NOT clamped
// to zero: the ledger is a historical trace, and a dip below zero is the
// signal that exposes a sale recorded without a covering receipt.
type LedgerEntry struct {
	Date           string          `json:"date"`
	Type           LedgerEntryType `json:"type"`
	Ref            string          `json:"ref"`   // LC number or invoice number
	Party          string          `json:"party"` // sale counterparty; empty for purchases
	Quantity       decimal.Decimal `json:"quantity"`
	InHouseQty     decimal.Decimal `json:"in_house_qty"` // purchases only
	ShortageQty    decimal.Decimal `json:"shortage_qty"` // purchases only
	Effect         decimal.Decimal `json:"effect"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// BuildUnifiedLedger merges purchase receipts and sale lines for one product
// into a single chronological ledger with a running in-house balance.
//
// Purchases are grouped by (date, LC number) and sales by (date, invoice
// number), summing quantities within each group, so one batch split across
// raw records aggregates identically to a single combined record. Groups keep
// the source order of their first member. The merged sequence is sorted by
// date with a stable sort over purchases-then-sales, so purchases precede
// sales on equal dates. That tie order is load-bearing: reports and their
// running balances must not change when the sort is revisited.
func BuildUnifiedLedger(purchases []ReceiptRecord, sales []LineItem, f Filter) []LedgerEntry {
	var entries []LedgerEntry

	// Group purchases by (date, lcNo).
	purchaseIdx := make(map[string]int)
	for _, r := range purchases {
		if !f.matchesReceipt(r) {
			continue
		}
		key := r.Date + "|" + normKey(r.LCNo)
		if i, ok := purchaseIdx[key]; ok {
			entries[i].Quantity = entries[i].Quantity.Add(parseQty(r.Quantity))
			entries[i].InHouseQty = entries[i].InHouseQty.Add(r.InHouseQty())
			entries[i].ShortageQty = entries[i].ShortageQty.Add(parseQty(r.ShortageQuantity))
			continue
		}
		purchaseIdx[key] = len(entries)
		entries = append(entries, LedgerEntry{
			Date:        r.Date,
			Type:        LedgerPurchase,
			Ref:         r.LCNo,
			Quantity:    parseQty(r.Quantity),
			InHouseQty:  r.InHouseQty(),
			ShortageQty: parseQty(r.ShortageQuantity),
		})
	}

	// Group sales by (date, invoiceNo), appended after all purchases so the
	// stable sort keeps purchases first on tied dates.
	saleIdx := make(map[string]int)
	for _, line := range sales {
		if !f.matchesSaleLine(line) {
			continue
		}
		key := line.Date + "|" + normKey(line.InvoiceNo)
		if i, ok := saleIdx[key]; ok {
			entries[i].Quantity = entries[i].Quantity.Add(line.Quantity)
			continue
		}
		saleIdx[key] = len(entries)
		entries = append(entries, LedgerEntry{
			Date:     line.Date,
			Type:     LedgerSale,
			Ref:      line.InvoiceNo,
			Party:    line.CompanyName,
			Quantity: line.Quantity,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	running := decimal.Zero
	for i := range entries {
		if entries[i].Type == LedgerPurchase {
			entries[i].Effect = entries[i].InHouseQty
		} else {
			entries[i].Effect = entries[i].Quantity.Neg()
		}
		running = running.Add(entries[i].Effect)
		entries[i].RunningBalance = running
	}
	return entries
}
