package app

import (
	"context"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
)

// ApplicationService is the single interface all adapters (web handlers,
// export, verification tooling) call. It decouples presentation from business
// logic. Implementations must contain no display logic of any kind.
type ApplicationService interface {
	// CreateReceipt records one LC receipt line.
	CreateReceipt(ctx context.Context, req CreateReceiptRequest) (*core.ReceiptRecord, error)

	// ListReceipts returns all LC receipt lines in date order.
	ListReceipts(ctx context.Context) (*ReceiptListResult, error)

	// DeleteReceipt removes one LC receipt line.
	DeleteReceipt(ctx context.Context, id int) error

	// CreateTransfer records stock moved into a named warehouse.
	CreateTransfer(ctx context.Context, req CreateTransferRequest) (*core.WarehouseTransferRecord, error)

	// ListTransfers returns all warehouse transfers in date order.
	ListTransfers(ctx context.Context) (*TransferListResult, error)

	// DeleteTransfer removes one warehouse transfer.
	DeleteTransfer(ctx context.Context, id int) error

	// CreateSale records a sale memo with its nested items and brand entries.
	CreateSale(ctx context.Context, req CreateSaleRequest) (*core.SaleRecord, error)

	// ListSales returns all sale memos with their lines.
	ListSales(ctx context.Context) (*SaleListResult, error)

	// GetSale returns one sale memo by id.
	GetSale(ctx context.Context, id int) (*core.SaleRecord, error)

	// DeleteSale removes a sale memo and its lines.
	DeleteSale(ctx context.Context, id int) error

	// StockMovementReport computes the per-(product, brand) movement summary.
	StockMovementReport(ctx context.Context, f core.Filter) (*core.StockMovementReport, error)

	// WarehouseStockReport computes per-warehouse balances with group subtotals.
	WarehouseStockReport(ctx context.Context, f core.Filter) (*core.WarehouseStockReport, error)

	// ProductHistoryReport computes the unified purchase/sale ledger for
	// f.Product with its running balance.
	ProductHistoryReport(ctx context.Context, f core.Filter) (*core.ProductHistoryReport, error)
}
