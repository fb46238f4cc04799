package app

import "github.com/itanienterprise/anienterprise-erp-sub001/internal/core"

// ReceiptListResult is returned by ListReceipts.
type ReceiptListResult struct {
	Receipts []core.ReceiptRecord `json:"receipts"`
	Count    int                  `json:"count"`
}

// TransferListResult is returned by ListTransfers.
type TransferListResult struct {
	Transfers []core.WarehouseTransferRecord `json:"transfers"`
	Count     int                            `json:"count"`
}

// SaleListResult is returned by ListSales.
type SaleListResult struct {
	Sales []core.SaleRecord `json:"sales"`
	Count int               `json:"count"`
}
