// Command verify-db checks connectivity, prints record counts, and runs one
// stock-movement report end to end against the live database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
	"github.com/itanienterprise/anienterprise-erp-sub001/internal/db"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	pool, err := db.NewPool(ctx)
	if err != nil {
		fmt.Printf("database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	for _, table := range []string{"lc_receipts", "warehouse_transfers", "sales", "sale_items", "sale_brand_entries"} {
		var count int
		if err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&count); err != nil {
			fmt.Printf("count %s: %v\n", table, err)
			os.Exit(1)
		}
		fmt.Printf("%-22s %d rows\n", table, count)
	}

	receipts := core.NewReceiptService(pool)
	transfers := core.NewTransferService(pool)
	sales := core.NewSaleService(pool)
	reports := core.NewReportService(pool, receipts, transfers, sales)

	report, err := reports.StockMovement(ctx, core.Filter{})
	if err != nil {
		fmt.Printf("stock movement report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nstock movement: %d rows\n", len(report.Rows))
	for _, row := range report.Rows {
		fmt.Printf("  %-20s %-12s in-house %s", row.ProductName, row.Brand, row.InHouse.String())
		if row.RawInHouse.IsNegative() {
			fmt.Printf("  (raw %s — oversold)", row.RawInHouse.String())
		}
		fmt.Println()
	}
	fmt.Printf("totals: arrived %s, shortage %s, sold %s, in-house %s\n",
		report.Totals.Arrived.String(), report.Totals.Shortage.String(),
		report.Totals.Sold.String(), report.Totals.InHouse.String())
}
