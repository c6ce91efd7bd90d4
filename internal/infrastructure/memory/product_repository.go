// Package memory implementa los repositorios del dominio sobre estructuras en
// memoria protegidas por mutex. La persistencia está fuera del alcance del
// producto: los datos viven lo que vive el proceso y se cargan con Seed*.
package memory

import (
	"sync"

	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// ProductRepository repositorio en memoria del catálogo de venta.
type ProductRepository struct {
	mu         sync.RWMutex
	byID       map[string]entity.Product
	order      []string // orden de carga, estable para los listados
	categories []entity.Category
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{byID: make(map[string]entity.Product)}
}

// Load carga el catálogo completo (reemplaza el contenido anterior).
func (r *ProductRepository) Load(products []entity.Product, categories []entity.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]entity.Product, len(products))
	r.order = r.order[:0]
	for _, p := range products {
		r.byID[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	r.categories = append([]entity.Category(nil), categories...)
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.byID[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

// List lista productos en orden de carga con paginación.
func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	return r.list("", limit, offset)
}

// ListByCategory lista productos de una categoría con paginación.
func (r *ProductRepository) ListByCategory(category string, limit, offset int) ([]*entity.Product, error) {
	return r.list(category, limit, offset)
}

func (r *ProductRepository) list(category string, limit, offset int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.byID[id]
		if category != "" && p.Category != category {
			continue
		}
		cp := p
		matched = append(matched, &cp)
	}
	return paginate(matched, limit, offset), nil
}

// Categories devuelve las categorías del catálogo.
func (r *ProductRepository) Categories() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for i := range r.categories {
		cp := r.categories[i]
		out = append(out, &cp)
	}
	return out, nil
}

// paginate aplica limit/offset sobre una lista ya ordenada.
func paginate[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
