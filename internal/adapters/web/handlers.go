package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itanienterprise/anienterprise-erp-sub001/internal/adapters/export"
	"github.com/itanienterprise/anienterprise-erp-sub001/internal/app"
)

// Handler wires the ApplicationService to the HTTP API consumed by the
// browser front end.
type Handler struct {
	svc app.ApplicationService
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	// ── Records ───────────────────────────────────────────────────────────────
	r.Route("/api/receipts", func(r chi.Router) {
		r.Get("/", h.listReceipts)
		r.Post("/", h.createReceipt)
		r.Delete("/{id}", h.deleteReceipt)
	})
	r.Route("/api/transfers", func(r chi.Router) {
		r.Get("/", h.listTransfers)
		r.Post("/", h.createTransfer)
		r.Delete("/{id}", h.deleteTransfer)
	})
	r.Route("/api/sales", func(r chi.Router) {
		r.Get("/", h.listSales)
		r.Post("/", h.createSale)
		r.Get("/{id}", h.getSale)
		r.Delete("/{id}", h.deleteSale)
	})

	// ── Reports ───────────────────────────────────────────────────────────────
	r.Route("/api/reports", func(r chi.Router) {
		r.Get("/stock-movement", h.stockMovementReport)
		r.Get("/stock-movement/export", h.exportStockMovement)
		r.Get("/warehouse-stock", h.warehouseStockReport)
		r.Get("/warehouse-stock/export", h.exportWarehouseStock)
		r.Get("/product-history", h.productHistoryReport)
		r.Get("/product-history/export", h.exportProductHistory)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// writeWorkbook streams an excelize workbook as an .xlsx download.
func writeWorkbook(w http.ResponseWriter, r *http.Request, wb *export.Workbook, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := wb.Write(w); err != nil {
		// Headers are already gone; all we can do is log via the recoverer path.
		writeError(w, r, "failed to stream workbook", "EXPORT_FAILED", http.StatusInternalServerError)
	}
}
