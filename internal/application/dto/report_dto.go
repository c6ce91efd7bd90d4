package dto

// SaleItemResponse una línea vendida dentro de una transacción del reporte.
type SaleItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// SaleResponse una transacción cerrada dentro del reporte diario.
type SaleResponse struct {
	ID    string             `json:"id"`
	Time  string             `json:"time"` // "09:15 AM"
	Items []SaleItemResponse `json:"items"`
	Total string             `json:"total"`
}

// DailyReportResponse reporte de ventas de una sucursal en una fecha.
type DailyReportResponse struct {
	Date             string         `json:"date"` // yyyy-MM-dd
	Branch           string         `json:"branch"`
	TotalSales       string         `json:"total_sales"`
	DisplayTotal     string         `json:"display_total"`
	TransactionCount int            `json:"transaction_count"`
	Transactions     []SaleResponse `json:"transactions"`
}
