package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatPackets renders a packet total for display. When a positive packet
// size is known the value reads "<whole packets> - <remainder> <unit>", where
// the remainder is the rounded quantity left over after the whole packets:
//
//	remainder = round(totalQty − floor(totalPkt) × packetSize)
//
// Without a packet size the rounded packet count is shown on its own.
// Unit defaults to kg when blank.
func FormatPackets(totalPkt, totalQty, packetSize decimal.Decimal, unit string) string {
	if unit == "" {
		unit = "kg"
	}
	if !packetSize.IsPositive() {
		return totalPkt.Round(0).String()
	}
	whole := totalPkt.Floor()
	remainder := totalQty.Sub(whole.Mul(packetSize)).Round(0)
	return fmt.Sprintf("%s - %s %s", whole.String(), remainder.String(), unit)
}

// RowTotals accumulates the summable columns of report rows.
type RowTotals struct {
	Quantity decimal.Decimal `json:"quantity"`
	Packets  decimal.Decimal `json:"packets"`
	Shortage decimal.Decimal `json:"shortage"`
	Amount   decimal.Decimal `json:"amount"`
}

// Add folds another total into t.
func (t RowTotals) Add(o RowTotals) RowTotals {
	return RowTotals{
		Quantity: t.Quantity.Add(o.Quantity),
		Packets:  t.Packets.Add(o.Packets),
		Shortage: t.Shortage.Add(o.Shortage),
		Amount:   t.Amount.Add(o.Amount),
	}
}

// SubtotalFor implements the subtotal emission rule: a group with a single
// constituent row shows that row's own values and gets no extra total line;
// two or more rows get an arithmetic-sum subtotal. Callers render the row
// when the returned pointer is non-nil.
func SubtotalFor(rows []RowTotals) *RowTotals {
	if len(rows) < 2 {
		return nil
	}
	sum := RowTotals{}
	for _, r := range rows {
		sum = sum.Add(r)
	}
	return &sum
}

// GrandTotal sums every row unconditionally — grand totals are always shown.
func GrandTotal(rows []RowTotals) RowTotals {
	sum := RowTotals{}
	for _, r := range rows {
		sum = sum.Add(r)
	}
	return sum
}
