package app

import (
	"context"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
)

type appService struct {
	receipts  core.ReceiptService
	transfers core.TransferService
	sales     core.SaleService
	reports   core.ReportService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	receipts core.ReceiptService,
	transfers core.TransferService,
	sales core.SaleService,
	reports core.ReportService,
) ApplicationService {
	return &appService{
		receipts:  receipts,
		transfers: transfers,
		sales:     sales,
		reports:   reports,
	}
}

// ── Receipts ──────────────────────────────────────────────────────────────────

func (s *appService) CreateReceipt(ctx context.Context, req CreateReceiptRequest) (*core.ReceiptRecord, error) {
	return s.receipts.Create(ctx, core.ReceiptRecord{
		Date:             req.Date,
		LCNo:             req.LCNo,
		ProductName:      req.ProductName,
		Brand:            req.Brand,
		Quantity:         req.Quantity,
		InHouseQuantity:  req.InHouseQuantity,
		ShortageQuantity: req.ShortageQuantity,
		InHousePackets:   req.InHousePackets,
		PacketCount:      req.PacketCount,
		PacketSize:       req.PacketSize,
		Unit:             req.Unit,
		UnitPrice:        req.UnitPrice,
	})
}

func (s *appService) ListReceipts(ctx context.Context) (*ReceiptListResult, error) {
	receipts, err := s.receipts.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ReceiptListResult{Receipts: receipts, Count: len(receipts)}, nil
}

func (s *appService) DeleteReceipt(ctx context.Context, id int) error {
	return s.receipts.Delete(ctx, id)
}

// ── Transfers ─────────────────────────────────────────────────────────────────

func (s *appService) CreateTransfer(ctx context.Context, req CreateTransferRequest) (*core.WarehouseTransferRecord, error) {
	return s.transfers.Create(ctx, core.WarehouseTransferRecord{
		Date:          req.Date,
		ProductName:   req.ProductName,
		Brand:         req.Brand,
		WarehouseName: req.WarehouseName,
		Quantity:      req.Quantity,
		Packets:       req.Packets,
	})
}

func (s *appService) ListTransfers(ctx context.Context) (*TransferListResult, error) {
	transfers, err := s.transfers.List(ctx)
	if err != nil {
		return nil, err
	}
	return &TransferListResult{Transfers: transfers, Count: len(transfers)}, nil
}

func (s *appService) DeleteTransfer(ctx context.Context, id int) error {
	return s.transfers.Delete(ctx, id)
}

// ── Sales ─────────────────────────────────────────────────────────────────────

func (s *appService) CreateSale(ctx context.Context, req CreateSaleRequest) (*core.SaleRecord, error) {
	sale := core.SaleRecord{
		Date:          req.Date,
		InvoiceNo:     req.InvoiceNo,
		CompanyName:   req.CompanyName,
		ProductName:   req.ProductName,
		Brand:         req.Brand,
		WarehouseName: req.WarehouseName,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		TotalAmount:   req.TotalAmount,
	}
	for _, item := range req.Items {
		coreItem := core.SaleItem{
			ProductName:   item.ProductName,
			Brand:         item.Brand,
			WarehouseName: item.WarehouseName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			TotalAmount:   item.TotalAmount,
			PacketCount:   item.PacketCount,
			PacketSize:    item.PacketSize,
		}
		for _, entry := range item.BrandEntries {
			coreItem.BrandEntries = append(coreItem.BrandEntries, core.BrandEntry(entry))
		}
		sale.Items = append(sale.Items, coreItem)
	}
	return s.sales.Create(ctx, sale)
}

func (s *appService) ListSales(ctx context.Context) (*SaleListResult, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	return &SaleListResult{Sales: sales, Count: len(sales)}, nil
}

func (s *appService) GetSale(ctx context.Context, id int) (*core.SaleRecord, error) {
	return s.sales.Get(ctx, id)
}

func (s *appService) DeleteSale(ctx context.Context, id int) error {
	return s.sales.Delete(ctx, id)
}

// ── Reports ───────────────────────────────────────────────────────────────────

func (s *appService) StockMovementReport(ctx context.Context, f core.Filter) (*core.StockMovementReport, error) {
	return s.reports.StockMovement(ctx, f)
}

func (s *appService) WarehouseStockReport(ctx context.Context, f core.Filter) (*core.WarehouseStockReport, error) {
	return s.reports.WarehouseStock(ctx, f)
}

func (s *appService) ProductHistoryReport(ctx context.Context, f core.Filter) (*core.ProductHistoryReport, error) {
	return s.reports.ProductHistory(ctx, f)
}
