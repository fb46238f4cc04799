package core

// Filter narrows the record set before aggregation. All fields are optional;
// a zero Filter passes everything. Text comparisons are case-insensitive,
// date bounds are inclusive. Dates are YYYY-MM-DD strings throughout the
// system, so lexical comparison is chronological comparison.
type Filter struct {
	StartDate string
	EndDate   string
	Brand     string
	Party     string // sale counterparty name; ignored for purchases
	Product   string
	Warehouse string
}

func (f Filter) dateInRange(date string) bool {
	if f.StartDate != "" && date < f.StartDate {
		return false
	}
	if f.EndDate != "" && date > f.EndDate {
		return false
	}
	return true
}

// matchesReceipt applies the date, product, and brand predicates to a receipt.
func (f Filter) matchesReceipt(r ReceiptRecord) bool {
	if !f.dateInRange(r.Date) {
		return false
	}
	if f.Product != "" && normKey(r.ProductName) != normKey(f.Product) {
		return false
	}
	if f.Brand != "" && normKey(r.Brand) != normKey(f.Brand) {
		return false
	}
	return true
}

// matchesSaleLine applies the date, product, brand, party, and warehouse
// predicates to a normalized sale line. The brand predicate honors the blank
// brand fallback so legacy lines stay visible when filtering a single-brand
// product by its own name.
func (f Filter) matchesSaleLine(line LineItem) bool {
	if !f.dateInRange(line.Date) {
		return false
	}
	if f.Product != "" && normKey(line.ProductName) != normKey(f.Product) {
		return false
	}
	if f.Brand != "" && !BrandMatches(line.Brand, f.Brand, line.ProductName) {
		return false
	}
	if f.Party != "" && normKey(line.CompanyName) != normKey(f.Party) {
		return false
	}
	if f.Warehouse != "" && normKey(line.WarehouseName) != normKey(f.Warehouse) {
		return false
	}
	return true
}

// matchesTransfer applies the date, product, brand, and warehouse predicates
// to a warehouse transfer.
func (f Filter) matchesTransfer(t WarehouseTransferRecord) bool {
	if !f.dateInRange(t.Date) {
		return false
	}
	if f.Product != "" && normKey(t.ProductName) != normKey(f.Product) {
		return false
	}
	if f.Brand != "" && normKey(t.Brand) != normKey(f.Brand) {
		return false
	}
	if f.Warehouse != "" && normKey(t.WarehouseName) != normKey(f.Warehouse) {
		return false
	}
	return true
}
