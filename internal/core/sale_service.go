package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SaleService persists and loads sale memos with their nested product items
// and brand entries. The nested shape is the storage format; the core's
// normalizer flattens it (and any remaining legacy flat records) into
// LineItems at computation time.
type SaleService interface {
	Create(ctx context.Context, sale SaleRecord) (*SaleRecord, error)
	List(ctx context.Context) ([]SaleRecord, error)
	Get(ctx context.Context, id int) (*SaleRecord, error)
	Delete(ctx context.Context, id int) error
}

type saleService struct {
	pool *pgxpool.Pool
}

func NewSaleService(pool *pgxpool.Pool) SaleService {
	return &saleService{pool: pool}
}

// Create inserts the memo header, its items, and each item's brand entries in
// one transaction. Items recorded without explicit brand entries are stored
// as a single synthesized entry so every persisted sale uses the nested
// shape; only pre-migration rows remain flat.
func (s *saleService) Create(ctx context.Context, sale SaleRecord) (*SaleRecord, error) {
	if sale.Date == "" {
		return nil, fmt.Errorf("sale must carry a date")
	}
	if sale.InvoiceNo == "" {
		return nil, fmt.Errorf("sale must carry an invoice number")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var saleID int
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (date, invoice_no, company_name)
		VALUES ($1::date, $2, $3)
		RETURNING id
	`, sale.Date, sale.InvoiceNo, sale.CompanyName).Scan(&saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert sale: %w", err)
	}

	items := sale.Items
	if len(items) == 0 && sale.ProductName != "" {
		items = []SaleItem{{
			ProductName:   sale.ProductName,
			Brand:         sale.Brand,
			WarehouseName: sale.WarehouseName,
			Quantity:      sale.Quantity,
			UnitPrice:     sale.UnitPrice,
			TotalAmount:   sale.TotalAmount,
		}}
	}

	for _, item := range items {
		var itemID int
		err = tx.QueryRow(ctx, `
			INSERT INTO sale_items (sale_id, product_name)
			VALUES ($1, $2)
			RETURNING id
		`, saleID, item.ProductName).Scan(&itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert sale item: %w", err)
		}

		entries := item.BrandEntries
		if len(entries) == 0 {
			entries = []BrandEntry{{
				Brand:         item.Brand,
				WarehouseName: item.WarehouseName,
				Quantity:      item.Quantity,
				UnitPrice:     item.UnitPrice,
				TotalAmount:   item.TotalAmount,
				PacketCount:   item.PacketCount,
				PacketSize:    item.PacketSize,
			}}
		}

		for _, entry := range entries {
			_, err = tx.Exec(ctx, `
				INSERT INTO sale_brand_entries (item_id, brand, warehouse_name, quantity, unit_price, total_amount, packet_count, packet_size)
				VALUES ($1, $2, $3,
				        COALESCE(NULLIF($4,'')::numeric, 0), COALESCE(NULLIF($5,'')::numeric, 0),
				        COALESCE(NULLIF($6,'')::numeric, 0), COALESCE(NULLIF($7,'')::numeric, 0),
				        COALESCE(NULLIF($8,'')::numeric, 0))
			`, itemID, entry.Brand, entry.WarehouseName, entry.Quantity, entry.UnitPrice,
				entry.TotalAmount, entry.PacketCount, entry.PacketSize)
			if err != nil {
				return nil, fmt.Errorf("failed to insert brand entry: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}
	return s.Get(ctx, saleID)
}

func (s *saleService) List(ctx context.Context) ([]SaleRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, date::text, invoice_no, company_name
		FROM sales
		ORDER BY date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []SaleRecord
	index := make(map[int]int)
	for rows.Next() {
		var sale SaleRecord
		if err := rows.Scan(&sale.ID, &sale.Date, &sale.InvoiceNo, &sale.CompanyName); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		index[sale.ID] = len(sales)
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}
	if len(sales) == 0 {
		return nil, nil
	}

	if err := s.attachLines(ctx, sales, index); err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *saleService) Get(ctx context.Context, id int) (*SaleRecord, error) {
	var sale SaleRecord
	err := s.pool.QueryRow(ctx, `
		SELECT id, date::text, invoice_no, company_name
		FROM sales WHERE id = $1
	`, id).Scan(&sale.ID, &sale.Date, &sale.InvoiceNo, &sale.CompanyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sale %d not found", id)
		}
		return nil, fmt.Errorf("failed to fetch sale %d: %w", id, err)
	}

	sales := []SaleRecord{sale}
	if err := s.attachLines(ctx, sales, map[int]int{sale.ID: 0}); err != nil {
		return nil, err
	}
	return &sales[0], nil
}

// attachLines loads items and brand entries for the given sales in two bulk
// queries and stitches them onto the headers.
func (s *saleService) attachLines(ctx context.Context, sales []SaleRecord, index map[int]int) error {
	ids := make([]int, 0, len(sales))
	for _, sale := range sales {
		ids = append(ids, sale.ID)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT si.id, si.sale_id, si.product_name,
		       sbe.brand, sbe.warehouse_name,
		       sbe.quantity::text, sbe.unit_price::text, sbe.total_amount::text,
		       sbe.packet_count::text, sbe.packet_size::text
		FROM sale_items si
		LEFT JOIN sale_brand_entries sbe ON sbe.item_id = si.id
		WHERE si.sale_id = ANY($1)
		ORDER BY si.sale_id, si.id, sbe.id
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to query sale lines: %w", err)
	}
	defer rows.Close()

	itemPos := make(map[int][2]int) // item id -> (sale index, item index)
	for rows.Next() {
		var itemID, saleID int
		var productName string
		var brand, warehouse, qty, price, amount, pktCount, pktSize *string
		if err := rows.Scan(&itemID, &saleID, &productName,
			&brand, &warehouse, &qty, &price, &amount, &pktCount, &pktSize); err != nil {
			return fmt.Errorf("failed to scan sale line: %w", err)
		}

		si := index[saleID]
		pos, ok := itemPos[itemID]
		if !ok {
			sales[si].Items = append(sales[si].Items, SaleItem{ProductName: productName})
			pos = [2]int{si, len(sales[si].Items) - 1}
			itemPos[itemID] = pos
		}

		// LEFT JOIN: an item with no entries yields NULL entry columns.
		if brand == nil && warehouse == nil && qty == nil {
			continue
		}
		sales[pos[0]].Items[pos[1]].BrandEntries = append(sales[pos[0]].Items[pos[1]].BrandEntries, BrandEntry{
			Brand:         deref(brand),
			WarehouseName: deref(warehouse),
			Quantity:      deref(qty),
			UnitPrice:     deref(price),
			TotalAmount:   deref(amount),
			PacketCount:   deref(pktCount),
			PacketSize:    deref(pktSize),
		})
	}
	return rows.Err()
}

func (s *saleService) Delete(ctx context.Context, id int) error {
	// sale_items and sale_brand_entries cascade.
	tag, err := s.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sale %d not found", id)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
