package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransferService persists and loads warehouse transfer records.
type TransferService interface {
	Create(ctx context.Context, t WarehouseTransferRecord) (*WarehouseTransferRecord, error)
	List(ctx context.Context) ([]WarehouseTransferRecord, error)
	Delete(ctx context.Context, id int) error
}

type transferService struct {
	pool *pgxpool.Pool
}

func NewTransferService(pool *pgxpool.Pool) TransferService {
	return &transferService{pool: pool}
}

const transferColumns = `id, date::text, product_name, brand, warehouse_name, quantity::text, packets::text`

func scanTransfer(row pgx.Row) (*WarehouseTransferRecord, error) {
	var t WarehouseTransferRecord
	if err := row.Scan(&t.ID, &t.Date, &t.ProductName, &t.Brand, &t.WarehouseName, &t.Quantity, &t.Packets); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *transferService) Create(ctx context.Context, t WarehouseTransferRecord) (*WarehouseTransferRecord, error) {
	if t.WarehouseName == "" {
		return nil, fmt.Errorf("transfer must name a warehouse")
	}

	row := s.pool.QueryRow(ctx, `
		INSERT INTO warehouse_transfers (date, product_name, brand, warehouse_name, quantity, packets)
		VALUES (COALESCE(NULLIF($1,'')::date, CURRENT_DATE), $2, $3, $4,
		        COALESCE(NULLIF($5,'')::numeric, 0), COALESCE(NULLIF($6,'')::numeric, 0))
		RETURNING `+transferColumns,
		t.Date, t.ProductName, t.Brand, t.WarehouseName, t.Quantity, t.Packets)

	created, err := scanTransfer(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert warehouse transfer: %w", err)
	}
	return created, nil
}

func (s *transferService) List(ctx context.Context) ([]WarehouseTransferRecord, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+transferColumns+` FROM warehouse_transfers ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouse transfers: %w", err)
	}
	defer rows.Close()

	var transfers []WarehouseTransferRecord
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan warehouse transfer: %w", err)
		}
		transfers = append(transfers, *t)
	}
	return transfers, rows.Err()
}

func (s *transferService) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM warehouse_transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete warehouse transfer %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("warehouse transfer %d not found", id)
	}
	return nil
}
