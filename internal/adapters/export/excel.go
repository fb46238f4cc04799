// Package export renders computed report aggregates into spreadsheet
// workbooks. It owns no calculation: every cell value comes out of the core
// report builders unchanged, so a workbook and the JSON API always agree.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
)

const sheetName = "Sheet1"

// Workbook is a built report spreadsheet ready to be streamed.
type Workbook struct {
	file *excelize.File
}

// Write streams the workbook to w.
func (wb *Workbook) Write(w io.Writer) error {
	defer wb.file.Close()
	return wb.file.Write(w)
}

// setRow writes values into one row starting at column A.
func setRow(f *excelize.File, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// StockMovementWorkbook lays out one row per (product, brand) key plus the
// grand-total row, mirroring the on-screen movement report.
func StockMovementWorkbook(report *core.StockMovementReport) (*Workbook, error) {
	f := excelize.NewFile()
	if err := setRow(f, 1, "Product", "Brand", "Unit", "Arrived", "Shortage", "Sold", "In-House", "Warehouses"); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, r := range report.Rows {
		warehouses := ""
		for i, wq := range r.Warehouses {
			if i > 0 {
				warehouses += ", "
			}
			warehouses += fmt.Sprintf("%s: %s", wq.WarehouseName, wq.Quantity.String())
		}
		if err := setRow(f, row, r.ProductName, r.Brand, r.Unit,
			r.Arrived.String(), r.Shortage.String(), r.Sold.String(), r.InHouse.String(), warehouses); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}

	if err := setRow(f, row, "Total", "", "",
		report.Totals.Arrived.String(), report.Totals.Shortage.String(),
		report.Totals.Sold.String(), report.Totals.InHouse.String()); err != nil {
		return nil, fmt.Errorf("failed to write totals row: %w", err)
	}
	return &Workbook{file: f}, nil
}

// WarehouseStockWorkbook lays out each warehouse group under its own heading,
// with subtotal rows only where the report carries them.
func WarehouseStockWorkbook(report *core.WarehouseStockReport) (*Workbook, error) {
	f := excelize.NewFile()
	if err := setRow(f, 1, "Warehouse", "Product", "Brand", "Quantity", "Packets"); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, g := range report.Groups {
		for i, r := range g.Rows {
			name := ""
			if i == 0 {
				name = g.WarehouseName
			}
			if err := setRow(f, row, name, r.ProductName, r.Brand, r.Quantity.String(), r.PacketDisplay); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
			row++
		}
		if g.Subtotal != nil {
			if err := setRow(f, row, "", "Sub-Total", "", g.Subtotal.Quantity.String(), g.Subtotal.Packets.String()); err != nil {
				return nil, fmt.Errorf("failed to write subtotal row %d: %w", row, err)
			}
			row++
		}
	}

	if err := setRow(f, row, "Grand Total", "", "",
		report.GrandTotal.Quantity.String(), report.GrandTotal.Packets.String()); err != nil {
		return nil, fmt.Errorf("failed to write grand total row: %w", err)
	}
	return &Workbook{file: f}, nil
}

// ProductHistoryWorkbook lays out the unified ledger chronologically with the
// running balance column, then the per-side totals and closing balance.
func ProductHistoryWorkbook(report *core.ProductHistoryReport) (*Workbook, error) {
	f := excelize.NewFile()
	if err := setRow(f, 1, "Product History", report.ProductName); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}
	if err := setRow(f, 2, "Date", "Type", "Ref", "Party", "Quantity", "Shortage", "Effect", "Running Balance"); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := 3
	for _, e := range report.Entries {
		if err := setRow(f, row, e.Date, string(e.Type), e.Ref, e.Party,
			e.Quantity.String(), e.ShortageQty.String(), e.Effect.String(), e.RunningBalance.String()); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}

	if err := setRow(f, row, "", "Purchases", "", "", report.PurchaseTotals.Quantity.String(), report.PurchaseTotals.Shortage.String()); err != nil {
		return nil, fmt.Errorf("failed to write purchase totals: %w", err)
	}
	if err := setRow(f, row+1, "", "Sales", "", "", report.SaleTotals.Quantity.String()); err != nil {
		return nil, fmt.Errorf("failed to write sale totals: %w", err)
	}
	if err := setRow(f, row+2, "", "Closing Balance", "", "", report.ClosingBalance.String()); err != nil {
		return nil, fmt.Errorf("failed to write closing balance: %w", err)
	}
	return &Workbook{file: f}, nil
}
