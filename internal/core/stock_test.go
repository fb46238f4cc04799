package core_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
)

func saleLine(product, brand, warehouse, qty string) core.LineItem {
	return core.LineItem{
		ProductName:   product,
		Brand:         brand,
		WarehouseName: warehouse,
		Quantity:      decimal.RequireFromString(qty),
	}
}

func TestInHouseBalance_SumsReceiptsTransfersMinusSales(t *testing.T) {
	receipts := []core.ReceiptRecord{
		{ProductName: "Flour", Brand: "Fresh", InHouseQuantity: "300"},
		{ProductName: "Flour", Brand: "Fresh", InHouseQuantity: "200"},
		{ProductName: "Sugar", Brand: "Fresh", InHouseQuantity: "999"}, // different product, must not count
	}
	transfers := []core.WarehouseTransferRecord{
		{ProductName: "Flour", Brand: "Fresh", WarehouseName: "Main", Quantity: "50"},
	}
	sales := []core.LineItem{
		saleLine("Flour", "Fresh", "Main", "120"),
		saleLine("flour", " FRESH ", "", "30"), // different spelling, same key
	}

	got := core.InHouseBalance("Flour", "Fresh", receipts, transfers, sales)
	if want := decimal.NewFromInt(400); !got.Equal(want) {
		t.Errorf("InHouseBalance = %s, want %s", got, want)
	}
}

func TestInHouseBalance_NeverNegative(t *testing.T) {
	sales := []core.LineItem{saleLine("Flour", "Fresh", "", "500")}

	got := core.InHouseBalance("Flour", "Fresh", nil, nil, sales)
	if !got.IsZero() {
		t.Errorf("over-sold balance must clamp to zero, got %s", got)
	}

	raw := core.RawInHouseBalance("Flour", "Fresh", nil, nil, sales)
	if want := decimal.NewFromInt(-500); !raw.Equal(want) {
		t.Errorf("raw balance must keep the deficit, got %s want %s", raw, want)
	}
}

func TestInHouseBalance_BrandFallbackEquivalence(t *testing.T) {
	receipts := []core.ReceiptRecord{{ProductName: "Rice", Brand: "Rice", InHouseQuantity: "100"}}

	explicit := core.InHouseBalance("Rice", "Rice", receipts, nil,
		[]core.LineItem{saleLine("Rice", "Rice", "", "30")})
	blank := core.InHouseBalance("Rice", "Rice", receipts, nil,
		[]core.LineItem{saleLine("Rice", "", "", "30")})
	dash := core.InHouseBalance("Rice", "Rice", receipts, nil,
		[]core.LineItem{saleLine("Rice", "-", "", "30")})

	if !explicit.Equal(blank) || !explicit.Equal(dash) {
		t.Errorf("blank/dash brands must decrement like the explicit brand: explicit=%s blank=%s dash=%s",
			explicit, blank, dash)
	}
	if want := decimal.NewFromInt(70); !explicit.Equal(want) {
		t.Errorf("balance = %s, want %s", explicit, want)
	}
}

func TestInHouseBalance_NoFallbackForRealBrands(t *testing.T) {
	receipts := []core.ReceiptRecord{{ProductName: "Rice", Brand: "Aroma", InHouseQuantity: "100"}}
	sales := []core.LineItem{saleLine("Rice", "", "", "30")}

	// Target brand "Aroma" differs from product name, so a blank sale brand
	// must not match it.
	got := core.InHouseBalance("Rice", "Aroma", receipts, nil, sales)
	if want := decimal.NewFromInt(100); !got.Equal(want) {
		t.Errorf("balance = %s, want untouched %s", got, want)
	}
}

func TestWarehouseBalance_AdditiveAcrossWarehouses(t *testing.T) {
	transfers := []core.WarehouseTransferRecord{
		{ProductName: "Flour", Brand: "Fresh", WarehouseName: "Main", Quantity: "300"},
		{ProductName: "Flour", Brand: "Fresh", WarehouseName: "Second", Quantity: "200"},
		{ProductName: "Flour", Brand: "Fresh", WarehouseName: "Main", Quantity: "100"},
	}
	sales := []core.LineItem{
		saleLine("Flour", "Fresh", "Main", "150"),
		saleLine("Flour", "Fresh", "Second", "50"),
	}

	main := core.WarehouseBalance("Flour", "Fresh", "Main", transfers, sales)
	second := core.WarehouseBalance("Flour", "Fresh", "Second", transfers, sales)

	if want := decimal.NewFromInt(250); !main.Equal(want) {
		t.Errorf("Main = %s, want %s", main, want)
	}
	if want := decimal.NewFromInt(150); !second.Equal(want) {
		t.Errorf("Second = %s, want %s", second, want)
	}

	// Sum of per-warehouse balances equals the balance over the union:
	// warehouses do not interact.
	total := main.Add(second)
	if want := decimal.NewFromInt(400); !total.Equal(want) {
		t.Errorf("summed warehouse balances = %s, want %s", total, want)
	}
}

func TestWarehouseBalance_ScopedToWarehouse(t *testing.T) {
	transfers := []core.WarehouseTransferRecord{
		{ProductName: "Flour", Brand: "Fresh", WarehouseName: "Main", Quantity: "100"},
	}
	// Sale from a different warehouse must not decrement Main.
	sales := []core.LineItem{saleLine("Flour", "Fresh", "Second", "60")}

	got := core.WarehouseBalance("Flour", "Fresh", "Main", transfers, sales)
	if want := decimal.NewFromInt(100); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}

	if sec := core.WarehouseBalance("Flour", "Fresh", "Second", transfers, sales); !sec.IsZero() {
		t.Errorf("Second has no transfers, balance must clamp to zero, got %s", sec)
	}
}

func TestBalanceCache_MatchesDirectComputation(t *testing.T) {
	receipts := []core.ReceiptRecord{{ProductName: "Flour", Brand: "Fresh", InHouseQuantity: "500"}}
	transfers := []core.WarehouseTransferRecord{
		{ProductName: "Flour", Brand: "Fresh", WarehouseName: "Main", Quantity: "200"},
	}
	sales := []core.LineItem{saleLine("Flour", "Fresh", "Main", "80")}

	cache := core.NewBalanceCache(receipts, transfers, sales)

	direct := core.InHouseBalance("Flour", "Fresh", receipts, transfers, sales)
	for i := 0; i < 3; i++ { // repeated lookups, including differently-cased keys
		if got := cache.InHouse(" FLOUR ", "fresh"); !got.Equal(direct) {
			t.Fatalf("cached in-house = %s, want %s", got, direct)
		}
	}

	directWh := core.WarehouseBalance("Flour", "Fresh", "Main", transfers, sales)
	if got := cache.Warehouse("Flour", "Fresh", "main"); !got.Equal(directWh) {
		t.Errorf("cached warehouse = %s, want %s", got, directWh)
	}
}
