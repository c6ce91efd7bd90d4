package repository

import (
	"time"

	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// SaleRepository contrato de persistencia para las transacciones cerradas.
// Las ventas son append-only: una transacción cerrada no se edita.
type SaleRepository interface {
	Append(sale *entity.Sale) error
	// ListByDateAndBranch devuelve las ventas de la sucursal cuya fecha local
	// coincide con day (solo parte de fecha), en orden de cierre.
	ListByDateAndBranch(day time.Time, branch string) ([]*entity.Sale, error)
}
