package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReceiptService persists and loads LC receipt lines.
type ReceiptService interface {
	Create(ctx context.Context, r ReceiptRecord) (*ReceiptRecord, error)
	List(ctx context.Context) ([]ReceiptRecord, error)
	Get(ctx context.Context, id int) (*ReceiptRecord, error)
	Delete(ctx context.Context, id int) error
}

type receiptService struct {
	pool *pgxpool.Pool
}

func NewReceiptService(pool *pgxpool.Pool) ReceiptService {
	return &receiptService{pool: pool}
}

const receiptColumns = `
	id, date::text, lc_no, product_name, brand,
	quantity::text, COALESCE(in_house_quantity::text, ''), shortage_quantity::text,
	in_house_packets::text, packet_count::text, packet_size::text, unit, unit_price::text`

func scanReceipt(row pgx.Row) (*ReceiptRecord, error) {
	var r ReceiptRecord
	if err := row.Scan(
		&r.ID, &r.Date, &r.LCNo, &r.ProductName, &r.Brand,
		&r.Quantity, &r.InHouseQuantity, &r.ShortageQuantity,
		&r.InHousePackets, &r.PacketCount, &r.PacketSize, &r.Unit, &r.UnitPrice,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *receiptService) Create(ctx context.Context, r ReceiptRecord) (*ReceiptRecord, error) {
	if r.Date == "" {
		return nil, fmt.Errorf("receipt must carry a date")
	}
	if r.LCNo == "" {
		return nil, fmt.Errorf("receipt must carry an LC number")
	}

	// Numeric columns take NULL for blank input so legacy permissiveness
	// survives the round trip: NULL scans back as the empty string, which the
	// core parses to zero. A stored in_house_quantity of NULL (as opposed to
	// zero) is what triggers the packet/weight fallback chain.
	row := s.pool.QueryRow(ctx, `
		INSERT INTO lc_receipts (date, lc_no, product_name, brand, quantity, in_house_quantity,
		                         shortage_quantity, in_house_packets, packet_count, packet_size, unit, unit_price)
		VALUES ($1::date, $2, $3, $4, NULLIF($5,'')::numeric, NULLIF($6,'')::numeric,
		        COALESCE(NULLIF($7,'')::numeric, 0), COALESCE(NULLIF($8,'')::numeric, 0),
		        COALESCE(NULLIF($9,'')::numeric, 0), COALESCE(NULLIF($10,'')::numeric, 0),
		        $11, COALESCE(NULLIF($12,'')::numeric, 0))
		RETURNING `+receiptColumns,
		r.Date, r.LCNo, r.ProductName, r.Brand, r.Quantity, r.InHouseQuantity,
		r.ShortageQuantity, r.InHousePackets, r.PacketCount, r.PacketSize, r.Unit, r.UnitPrice)

	created, err := scanReceipt(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert LC receipt: %w", err)
	}
	return created, nil
}

func (s *receiptService) List(ctx context.Context) ([]ReceiptRecord, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+receiptColumns+` FROM lc_receipts ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query LC receipts: %w", err)
	}
	defer rows.Close()

	var receipts []ReceiptRecord
	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan LC receipt: %w", err)
		}
		receipts = append(receipts, *r)
	}
	return receipts, rows.Err()
}

func (s *receiptService) Get(ctx context.Context, id int) (*ReceiptRecord, error) {
	r, err := scanReceipt(s.pool.QueryRow(ctx,
		`SELECT `+receiptColumns+` FROM lc_receipts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("LC receipt %d not found", id)
		}
		return nil, fmt.Errorf("failed to fetch LC receipt %d: %w", id, err)
	}
	return r, nil
}

func (s *receiptService) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM lc_receipts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete LC receipt %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("LC receipt %d not found", id)
	}
	return nil
}
