package repository

import "github.com/jhoicas/brewflow-pos/internal/domain/entity"

// InventoryRepository contrato de persistencia para InventoryItem (CRUD por sucursal).
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	// Search filtra por término (nombre o categoría, sin distinguir mayúsculas);
	// término vacío lista todo.
	Search(term string, limit, offset int) ([]*entity.InventoryItem, error)
}

// BranchRepository contrato de lectura para las sucursales.
type BranchRepository interface {
	List() ([]*entity.Branch, error)
	GetByID(id string) (*entity.Branch, error)
}
