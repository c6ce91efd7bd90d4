package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// SaleRepository repositorio en memoria, append-only, de transacciones cerradas.
type SaleRepository struct {
	mu    sync.RWMutex
	sales []entity.Sale
}

// NewSaleRepository construye el repositorio vacío.
func NewSaleRepository() *SaleRepository {
	return &SaleRepository{}
}

// Load carga ventas iniciales (datos de demostración).
func (r *SaleRepository) Load(sales []entity.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append([]entity.Sale(nil), sales...)
}

// Append registra una venta cerrada. Las ventas no se editan ni se borran.
func (r *SaleRepository) Append(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, *sale)
	return nil
}

// ListByDateAndBranch devuelve las ventas de la sucursal cuya fecha local
// coincide con day, en orden de cierre.
func (r *SaleRepository) ListByDateAndBranch(day time.Time, branch string) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	y, m, d := day.Date()
	out := make([]*entity.Sale, 0)
	for i := range r.sales {
		s := r.sales[i]
		sy, sm, sd := s.Time.Date()
		if s.Branch != branch || sy != y || sm != m || sd != d {
			continue
		}
		cp := s
		out = append(out, &cp)
	}
	return out, nil
}
