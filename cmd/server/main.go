package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	webAdapter "github.com/itanienterprise/anienterprise-erp-sub001/internal/adapters/web"
	"github.com/itanienterprise/anienterprise-erp-sub001/internal/app"
	"github.com/itanienterprise/anienterprise-erp-sub001/internal/core"
	"github.com/itanienterprise/anienterprise-erp-sub001/internal/db"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	receiptService := core.NewReceiptService(pool)
	transferService := core.NewTransferService(pool)
	saleService := core.NewSaleService(pool)
	reportService := core.NewReportService(pool, receiptService, transferService, saleService)

	svc := app.NewAppService(receiptService, transferService, saleService, reportService)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
