package app

// CreateReceiptRequest carries one LC receipt line from an adapter.
// Quantity fields are strings end to end: the core is permissive about
// blank and malformed numbers and the storage layer preserves blanks as
// NULL so the in-house fallback chain still applies on read.
type CreateReceiptRequest struct {
	Date             string `json:"date"`
	LCNo             string `json:"lc_no"`
	ProductName      string `json:"product_name"`
	Brand            string `json:"brand"`
	Quantity         string `json:"quantity"`
	InHouseQuantity  string `json:"in_house_quantity"`
	ShortageQuantity string `json:"shortage_quantity"`
	InHousePackets   string `json:"in_house_packets"`
	PacketCount      string `json:"packet_count"`
	PacketSize       string `json:"packet_size"`
	Unit             string `json:"unit"`
	UnitPrice        string `json:"unit_price"`
}

// CreateTransferRequest carries one warehouse transfer.
type CreateTransferRequest struct {
	Date          string `json:"date"`
	ProductName   string `json:"product_name"`
	Brand         string `json:"brand"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      string `json:"quantity"`
	Packets       string `json:"packets"`
}

// CreateSaleRequest carries one sale memo. Items use the nested shape;
// adapters posting the legacy flat shape fill the flat fields instead.
type CreateSaleRequest struct {
	Date        string           `json:"date"`
	InvoiceNo   string           `json:"invoice_no"`
	CompanyName string           `json:"company_name"`
	Items       []SaleItemInput  `json:"items"`

	ProductName   string `json:"product_name,omitempty"`
	Brand         string `json:"brand,omitempty"`
	WarehouseName string `json:"warehouse_name,omitempty"`
	Quantity      string `json:"quantity,omitempty"`
	UnitPrice     string `json:"unit_price,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
}

// SaleItemInput is one product line of a sale request.
type SaleItemInput struct {
	ProductName  string            `json:"product_name"`
	BrandEntries []BrandEntryInput `json:"brand_entries"`

	Brand         string `json:"brand,omitempty"`
	WarehouseName string `json:"warehouse_name,omitempty"`
	Quantity      string `json:"quantity,omitempty"`
	UnitPrice     string `json:"unit_price,omitempty"`
	TotalAmount   string `json:"total_amount,omitempty"`
	PacketCount   string `json:"packet_count,omitempty"`
	PacketSize    string `json:"packet_size,omitempty"`
}

// BrandEntryInput is one (brand, warehouse, quantity, price) tuple.
type BrandEntryInput struct {
	Brand         string `json:"brand"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      string `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	TotalAmount   string `json:"total_amount"`
	PacketCount   string `json:"packet_count,omitempty"`
	PacketSize    string `json:"packet_size,omitempty"`
}
