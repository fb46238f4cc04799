package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
)

func invoiceLine(date, invoice, party, product, qty string) core.LineItem {
	return core.LineItem{
		Date:        date,
		InvoiceNo:   invoice,
		CompanyName: party,
		ProductName: product,
		Quantity:    decimal.RequireFromString(qty),
	}
}

func TestBuildUnifiedLedger_RunningBalance(t *testing.T) {
	purchases := []core.ReceiptRecord{
		{Date: "2024-01-01", LCNo: "LC1", ProductName: "Rice", InHouseQuantity: "100"},
	}
	sales := []core.LineItem{invoiceLine("2024-01-02", "INV1", "Karim Traders", "Rice", "30")}

	entries := core.BuildUnifiedLedger(purchases, sales, core.Filter{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Type != core.LedgerPurchase || !entries[0].RunningBalance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("first entry: %+v, want purchase with running balance 100", entries[0])
	}
	if entries[1].Type != core.LedgerSale || !entries[1].RunningBalance.Equal(decimal.NewFromInt(70)) {
		t.Errorf("second entry: %+v, want sale with running balance 70", entries[1])
	}
	if !entries[1].Effect.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("sale effect = %s, want -30", entries[1].Effect)
	}
}

func TestBuildUnifiedLedger_GroupingIdempotence(t *testing.T) {
	combined := []core.ReceiptRecord{
		{Date: "2024-01-01", LCNo: "LC1", ProductName: "Rice", Quantity: "100", InHouseQuantity: "95", ShortageQuantity: "5"},
	}
	split := []core.ReceiptRecord{
		{Date: "2024-01-01", LCNo: "LC1", ProductName: "Rice", Quantity: "60", InHouseQuantity: "57", ShortageQuantity: "3"},
		{Date: "2024-01-01", LCNo: "LC1", ProductName: "Rice", Quantity: "40", InHouseQuantity: "38", ShortageQuantity: "2"},
	}

	a := core.BuildUnifiedLedger(combined, nil, core.Filter{})
	b := core.BuildUnifiedLedger(split, nil, core.Filter{})

	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("both ledgers must collapse to one group, got %d and %d", len(a), len(b))
	}
	if !a[0].Quantity.Equal(b[0].Quantity) || !a[0].InHouseQty.Equal(b[0].InHouseQty) ||
		!a[0].ShortageQty.Equal(b[0].ShortageQty) || !a[0].RunningBalance.Equal(b[0].RunningBalance) {
		t.Errorf("split batch aggregated differently:\ncombined: %+v\nsplit:    %+v", a[0], b[0])
	}
}

func TestBuildUnifiedLedger_PurchasesBeforeSalesOnTiedDates(t *testing.T) {
	// Same-day purchase and sale: the purchase must come first, so the
	// running balance never dips spuriously. The order comes from the stable
	// sort over purchases-then-sales, not from a secondary key.
	purchases := []core.ReceiptRecord{
		{Date: "2024-02-10", LCNo: "LC7", ProductName: "Rice", InHouseQuantity: "50"},
	}
	sales := []core.LineItem{invoiceLine("2024-02-10", "INV9", "", "Rice", "50")}

	entries := core.BuildUnifiedLedger(purchases, sales, core.Filter{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Type != core.LedgerPurchase || entries[1].Type != core.LedgerSale {
		t.Fatalf("tied dates must keep purchases first, got %s then %s", entries[0].Type, entries[1].Type)
	}
	if !entries[0].RunningBalance.Equal(decimal.NewFromInt(50)) || !entries[1].RunningBalance.IsZero() {
		t.Errorf("running balances %s, %s; want 50, 0",
			entries[0].RunningBalance, entries[1].RunningBalance)
	}
}

func TestBuildUnifiedLedger_NegativeRunningBalanceSurvives(t *testing.T) {
	sales := []core.LineItem{invoiceLine("2024-01-05", "INV2", "", "Rice", "40")}

	entries := core.BuildUnifiedLedger(nil, sales, core.Filter{})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if want := decimal.NewFromInt(-40); !entries[0].RunningBalance.Equal(want) {
		t.Errorf("ledger must not clamp: running balance = %s, want %s", entries[0].RunningBalance, want)
	}
}

func TestBuildUnifiedLedger_SaleGroupingByDateAndInvoice(t *testing.T) {
	sales := []core.LineItem{
		invoiceLine("2024-01-03", "INV5", "Karim Traders", "Rice", "10"),
		invoiceLine("2024-01-03", "INV5", "Karim Traders", "Rice", "15"),
		invoiceLine("2024-01-03", "INV6", "Rahim Stores", "Rice", "5"),
	}

	entries := core.BuildUnifiedLedger(nil, sales, core.Filter{})
	if len(entries) != 2 {
		t.Fatalf("expected 2 sale groups, got %d", len(entries))
	}
	if !entries[0].Quantity.Equal(decimal.NewFromInt(25)) {
		t.Errorf("INV5 group quantity = %s, want 25", entries[0].Quantity)
	}
	if entries[1].Ref != "INV6" || !entries[1].Quantity.Equal(decimal.NewFromInt(5)) {
		t.Errorf("unexpected second group: %+v", entries[1])
	}
}

func TestBuildUnifiedLedger_Filters(t *testing.T) {
	purchases := []core.ReceiptRecord{
		{Date: "2024-01-01", LCNo: "LC1", ProductName: "Rice", Brand: "Aroma", InHouseQuantity: "100"},
		{Date: "2024-03-01", LCNo: "LC2", ProductName: "Rice", Brand: "Aroma", InHouseQuantity: "50"},
		{Date: "2024-01-15", LCNo: "LC3", ProductName: "Rice", Brand: "Basmati", InHouseQuantity: "80"},
	}
	sales := []core.LineItem{
		invoiceLine("2024-01-10", "INV1", "Karim Traders", "Rice", "20"),
		invoiceLine("2024-01-12", "INV2", "Rahim Stores", "Rice", "10"),
	}
	for i := range sales {
		sales[i].Brand = "Aroma"
	}

	f := core.Filter{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Brand:     "aroma", // case-insensitive
		Party:     "karim traders",
	}
	entries := core.BuildUnifiedLedger(purchases, sales, f)

	if len(entries) != 2 {
		t.Fatalf("expected LC1 and INV1 only, got %d entries", len(entries))
	}
	if entries[0].Ref != "LC1" || entries[1].Ref != "INV1" {
		t.Errorf("unexpected refs: %q, %q", entries[0].Ref, entries[1].Ref)
	}
	// Party predicate applies to sales only; LC1 has no counterparty.
	if want := decimal.NewFromInt(80); !entries[1].RunningBalance.Equal(want) {
		t.Errorf("running balance = %s, want %s", entries[1].RunningBalance, want)
	}
}

func TestBuildProductHistoryReport_TotalsAndClosing(t *testing.T) {
	purchases := []core.ReceiptRecord{
		{Date: "2024-01-01", LCNo: "LC1", ProductName: "Rice", Quantity: "100", InHouseQuantity: "95", ShortageQuantity: "5"},
		{Date: "2024-01-20", LCNo: "LC2", ProductName: "Rice", Quantity: "50", InHouseQuantity: "50"},
		{Date: "2024-01-25", LCNo: "LC9", ProductName: "Wheat", Quantity: "999", InHouseQuantity: "999"},
	}
	sales := []core.LineItem{
		invoiceLine("2024-01-10", "INV1", "", "Rice", "30"),
		invoiceLine("2024-01-30", "INV2", "", "Rice", "40"),
	}

	report := core.BuildProductHistoryReport(purchases, sales, core.Filter{Product: "rice"})

	if len(report.Entries) != 4 {
		t.Fatalf("expected 4 entries for Rice, got %d", len(report.Entries))
	}
	if want := decimal.NewFromInt(150); !report.PurchaseTotals.Quantity.Equal(want) {
		t.Errorf("purchase quantity total = %s, want %s", report.PurchaseTotals.Quantity, want)
	}
	if want := decimal.NewFromInt(5); !report.PurchaseTotals.Shortage.Equal(want) {
		t.Errorf("shortage total = %s, want %s", report.PurchaseTotals.Shortage, want)
	}
	if want := decimal.NewFromInt(70); !report.SaleTotals.Quantity.Equal(want) {
		t.Errorf("sale quantity total = %s, want %s", report.SaleTotals.Quantity, want)
	}
	if want := decimal.NewFromInt(75); !report.ClosingBalance.Equal(want) {
		t.Errorf("closing balance = %s, want %s", report.ClosingBalance, want)
	}
}
