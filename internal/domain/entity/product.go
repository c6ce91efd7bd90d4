package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo POS.
// Stock es informativo para la pantalla de venta: el agregador de órdenes
// no lo valida (el catálogo es el dueño de ese dato).
type Product struct {
	ID        string
	Name      string
	Category  string          // slug de categoría: coffee, tea, pastries, sandwiches
	Price     decimal.Decimal // precio unitario de venta, no negativo
	Stock     int
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
