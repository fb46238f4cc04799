package web

import (
	"net/http"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/adapters/export"
	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
)

// filterFromQuery maps report query parameters onto a core.Filter.
// Predicate semantics (case folding, inclusive bounds, brand fallback) live
// in the core; this only carries strings across.
func filterFromQuery(r *http.Request) core.Filter {
	q := r.URL.Query()
	return core.Filter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Brand:     q.Get("brand"),
		Party:     q.Get("party"),
		Product:   q.Get("product"),
		Warehouse: q.Get("warehouse"),
	}
}

func (h *Handler) stockMovementReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.StockMovementReport(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, r, err.Error(), "REPORT_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, report)
}

func (h *Handler) warehouseStockReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.WarehouseStockReport(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, r, err.Error(), "REPORT_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, report)
}

func (h *Handler) productHistoryReport(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	if f.Product == "" {
		writeError(w, r, "product query parameter is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	report, err := h.svc.ProductHistoryReport(r.Context(), f)
	if err != nil {
		writeError(w, r, err.Error(), "REPORT_FAILED", http.StatusInternalServerError)
		return
	}
	writeJSON(w, report)
}

// ── Excel export ──────────────────────────────────────────────────────────────

func (h *Handler) exportStockMovement(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.StockMovementReport(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, r, err.Error(), "REPORT_FAILED", http.StatusInternalServerError)
		return
	}
	wb, err := export.StockMovementWorkbook(report)
	if err != nil {
		writeError(w, r, err.Error(), "EXPORT_FAILED", http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, r, wb, "stock-movement.xlsx")
}

func (h *Handler) exportWarehouseStock(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.WarehouseStockReport(r.Context(), filterFromQuery(r))
	if err != nil {
		writeError(w, r, err.Error(), "REPORT_FAILED", http.StatusInternalServerError)
		return
	}
	wb, err := export.WarehouseStockWorkbook(report)
	if err != nil {
		writeError(w, r, err.Error(), "EXPORT_FAILED", http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, r, wb, "warehouse-stock.xlsx")
}

func (h *Handler) exportProductHistory(w http.ResponseWriter, r *http.Request) {
	f := filterFromQuery(r)
	if f.Product == "" {
		writeError(w, r, "product query parameter is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	report, err := h.svc.ProductHistoryReport(r.Context(), f)
	if err != nil {
		writeError(w, r, err.Error(), "REPORT_FAILED", http.StatusInternalServerError)
		return
	}
	wb, err := export.ProductHistoryWorkbook(report)
	if err != nil {
		writeError(w, r, err.Error(), "EXPORT_FAILED", http.StatusInternalServerError)
		return
	}
	writeWorkbook(w, r, wb, "product-history.xlsx")
}
