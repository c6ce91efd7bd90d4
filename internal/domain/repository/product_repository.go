package repository

import "github.com/jhoicas/brewflow-pos/internal/domain/entity"

// ProductRepository contrato de persistencia para Product (catálogo de venta).
// Para el agregador de órdenes el catálogo es solo lectura.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(category string, limit, offset int) ([]*entity.Product, error)
	Categories() ([]*entity.Category, error)
}
