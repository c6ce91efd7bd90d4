package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem es una línea vendida dentro de una transacción cerrada.
type SaleItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Sale representa una transacción de venta cerrada (post-checkout).
type Sale struct {
	ID     string
	Branch string
	Time   time.Time
	Items  []SaleItem
	Total  decimal.Decimal // subtotal + impuesto, congelado al momento del cierre
}

// DailyReport agrega las ventas de una sucursal en una fecha.
type DailyReport struct {
	Date             time.Time // solo se usa la parte de fecha
	Branch           string
	TotalSales       decimal.Decimal
	TransactionCount int
	Transactions     []Sale
}
