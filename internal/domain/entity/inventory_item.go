package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un ítem de inventario de una sucursal
// (insumos y suministros, independiente del catálogo de venta).
type InventoryItem struct {
	ID        string
	Name      string
	Category  string // Raw Material, Dairy, Baked Goods, Supplies, Beverages
	Stock     int
	Price     decimal.Decimal // costo unitario de reposición
	Branch    string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
