package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
)

func TestFormatPackets(t *testing.T) {
	tests := []struct {
		name           string
		pkt, qty, size string
		unit           string
		want           string
	}{
		{"whole packets with remainder", "3.4", "340", "100", "", "3 - 40 kg"},
		{"exact packets", "4", "200", "50", "", "4 - 0 kg"},
		{"explicit unit", "2.5", "125", "50", "bag", "2 - 25 bag"},
		{"no packet size, plain rounded count", "3.4", "340", "0", "", "3"},
		{"no packet size rounds half up", "3.5", "0", "0", "", "4"},
		{"remainder rounds", "1.999", "99.6", "50", "", "1 - 50 kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := core.FormatPackets(
				decimal.RequireFromString(tt.pkt),
				decimal.RequireFromString(tt.qty),
				decimal.RequireFromString(tt.size),
				tt.unit,
			)
			if got != tt.want {
				t.Errorf("FormatPackets(%s, %s, %s, %q) = %q, want %q",
					tt.pkt, tt.qty, tt.size, tt.unit, got, tt.want)
			}
		})
	}
}

func totalsRow(qty string) core.RowTotals {
	return core.RowTotals{Quantity: decimal.RequireFromString(qty)}
}

func TestSubtotalFor_EmissionRule(t *testing.T) {
	if sub := core.SubtotalFor(nil); sub != nil {
		t.Error("empty group must not emit a subtotal")
	}
	if sub := core.SubtotalFor([]core.RowTotals{totalsRow("10")}); sub != nil {
		t.Error("single-row group must not emit a subtotal")
	}

	sub := core.SubtotalFor([]core.RowTotals{totalsRow("10"), totalsRow("15"), totalsRow("5")})
	if sub == nil {
		t.Fatal("multi-row group must emit a subtotal")
	}
	if want := decimal.NewFromInt(30); !sub.Quantity.Equal(want) {
		t.Errorf("subtotal quantity = %s, want %s", sub.Quantity, want)
	}
}

func TestGrandTotal_AlwaysSums(t *testing.T) {
	got := core.GrandTotal([]core.RowTotals{totalsRow("10")})
	if want := decimal.NewFromInt(10); !got.Quantity.Equal(want) {
		t.Errorf("grand total = %s, want %s (grand totals have no single-row exception)", got.Quantity, want)
	}
}

func TestBuildWarehouseStockReport_SubtotalsPerGroup(t *testing.T) {
	transfers := []core.WarehouseTransferRecord{
		{ID: 1, ProductName: "Flour", Brand: "Fresh", WarehouseName: "Main", Quantity: "100", Packets: "2"},
		{ID: 2, ProductName: "Flour", Brand: "Teer", WarehouseName: "Main", Quantity: "60", Packets: "1"},
		{ID: 3, ProductName: "Rice", Brand: "Aroma", WarehouseName: "Second", Quantity: "40", Packets: "1"},
	}
	sales := []core.LineItem{
		{ProductName: "Flour", Brand: "Fresh", WarehouseName: "Main",
			Quantity: decimal.NewFromInt(30), PacketCount: decimal.NewFromInt(1)},
	}

	report := core.BuildWarehouseStockReport(transfers, sales, core.Filter{})
	if len(report.Groups) != 2 {
		t.Fatalf("expected 2 warehouse groups, got %d", len(report.Groups))
	}

	main := report.Groups[0]
	if main.WarehouseName != "Main" || len(main.Rows) != 2 {
		t.Fatalf("unexpected first group: %+v", main)
	}
	if main.Subtotal == nil {
		t.Fatal("two-row group must carry a subtotal")
	}
	if want := decimal.NewFromInt(130); !main.Subtotal.Quantity.Equal(want) {
		t.Errorf("Main subtotal = %s, want %s", main.Subtotal.Quantity, want)
	}

	second := report.Groups[1]
	if second.Subtotal != nil {
		t.Error("single-row group must not carry a subtotal")
	}

	if want := decimal.NewFromInt(170); !report.GrandTotal.Quantity.Equal(want) {
		t.Errorf("grand total = %s, want %s", report.GrandTotal.Quantity, want)
	}
}

func TestBuildStockMovementReport(t *testing.T) {
	receipts := []core.ReceiptRecord{
		{Date: "2024-01-01", LCNo: "LC1", ProductName: "Flour", Brand: "Fresh",
			Quantity: "500", InHouseQuantity: "490", ShortageQuantity: "10", PacketSize: "50", Unit: "kg"},
		{Date: "2024-02-01", LCNo: "LC2", ProductName: "Flour", Brand: "Fresh",
			Quantity: "300", InHouseQuantity: "300"},
		{Date: "2024-02-05", LCNo: "LC3", ProductName: "Rice", Brand: "Aroma",
			Quantity: "200", InHouseQuantity: "200"},
	}
	transfers := []core.WarehouseTransferRecord{
		{ProductName: "Flour", Brand: "Fresh", WarehouseName: "Main", Quantity: "100"},
	}
	sales := []core.LineItem{
		{Date: "2024-02-10", InvoiceNo: "INV1", ProductName: "Flour", Brand: "Fresh",
			WarehouseName: "Main", Quantity: decimal.NewFromInt(90)},
	}

	report := core.BuildStockMovementReport(receipts, transfers, sales, core.Filter{})
	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}

	flour := report.Rows[0]
	if flour.ProductName != "Flour" || flour.Brand != "Fresh" {
		t.Fatalf("rows must keep first-seen receipt order, got %+v", flour)
	}
	if want := decimal.NewFromInt(800); !flour.Arrived.Equal(want) {
		t.Errorf("arrived = %s, want %s", flour.Arrived, want)
	}
	if want := decimal.NewFromInt(10); !flour.Shortage.Equal(want) {
		t.Errorf("shortage = %s, want %s", flour.Shortage, want)
	}
	// 490 + 300 receipts + 100 transfer - 90 sold.
	if want := decimal.NewFromInt(800); !flour.InHouse.Equal(want) {
		t.Errorf("in-house = %s, want %s", flour.InHouse, want)
	}
	if len(flour.Warehouses) != 1 || !flour.Warehouses[0].Quantity.Equal(decimal.NewFromInt(10)) {
		t.Errorf("warehouse quantities: %+v, want Main=10", flour.Warehouses)
	}

	if want := decimal.NewFromInt(1000); !report.Totals.Arrived.Equal(want) {
		t.Errorf("totals arrived = %s, want %s", report.Totals.Arrived, want)
	}
	if want := decimal.NewFromInt(1000); !report.Totals.InHouse.Equal(want) {
		t.Errorf("totals in-house = %s, want %s", report.Totals.InHouse, want)
	}
}
