package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportService loads a full record snapshot and runs the pure report
// builders over it. It owns no computation of its own — every number in a
// report comes out of the builders in report_model.go, so a report computed
// here and one computed over the same slices in a test are identical.
type ReportService interface {
	// StockMovement summarizes arrivals, shortages, sales, and current
	// balances per (product, brand) key.
	StockMovement(ctx context.Context, f Filter) (*StockMovementReport, error)

	// WarehouseStock groups current balances by warehouse, with subtotals
	// for multi-row groups.
	WarehouseStock(ctx context.Context, f Filter) (*WarehouseStockReport, error)

	// ProductHistory returns the unified purchase/sale ledger for f.Product.
	ProductHistory(ctx context.Context, f Filter) (*ProductHistoryReport, error)
}

type reportService struct {
	pool      *pgxpool.Pool
	receipts  ReceiptService
	transfers TransferService
	sales     SaleService
}

func NewReportService(pool *pgxpool.Pool, receipts ReceiptService, transfers TransferService, sales SaleService) ReportService {
	return &reportService{pool: pool, receipts: receipts, transfers: transfers, sales: sales}
}

// snapshot fetches all three record sets. Reports are computed over a single
// consistent read; the builders never touch the database afterwards.
func (s *reportService) snapshot(ctx context.Context) ([]ReceiptRecord, []WarehouseTransferRecord, []LineItem, error) {
	receipts, err := s.receipts.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load receipts: %w", err)
	}
	transfers, err := s.transfers.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load transfers: %w", err)
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load sales: %w", err)
	}
	return receipts, transfers, FlattenSaleLines(sales), nil
}

func (s *reportService) StockMovement(ctx context.Context, f Filter) (*StockMovementReport, error) {
	receipts, transfers, lines, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildStockMovementReport(receipts, transfers, lines, f), nil
}

func (s *reportService) WarehouseStock(ctx context.Context, f Filter) (*WarehouseStockReport, error) {
	_, transfers, lines, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildWarehouseStockReport(transfers, lines, f), nil
}

func (s *reportService) ProductHistory(ctx context.Context, f Filter) (*ProductHistoryReport, error) {
	if f.Product == "" {
		return nil, fmt.Errorf("product history requires a product filter")
	}
	receipts, _, lines, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return BuildProductHistoryReport(receipts, lines, f), nil
}
