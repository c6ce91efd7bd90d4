package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/brewflow-pos/internal/domain"
	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// InventoryRepository repositorio en memoria de ítems de inventario.
type InventoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]entity.InventoryItem
	order []string
}

// NewInventoryRepository construye el repositorio vacío.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{byID: make(map[string]entity.InventoryItem)}
}

// Load carga el inventario inicial (reemplaza el contenido anterior).
func (r *InventoryRepository) Load(items []entity.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]entity.InventoryItem, len(items))
	r.order = r.order[:0]
	for _, it := range items {
		r.byID[it.ID] = it
		r.order = append(r.order, it.ID)
	}
}

// Create persiste el ítem; ErrDuplicate si el ID ya existe.
func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[item.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[item.ID] = *item
	r.order = append(r.order, item.ID)
	return nil
}

// GetByID devuelve el ítem o nil si no existe.
func (r *InventoryRepository) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if it, ok := r.byID[id]; ok {
		cp := it
		return &cp, nil
	}
	return nil, nil
}

// Update reemplaza el ítem; ErrNotFound si no existe.
func (r *InventoryRepository) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[item.ID] = *item
	return nil
}

// Delete elimina el ítem; ErrNotFound si no existe.
func (r *InventoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Search filtra por término en nombre o categoría, sin distinguir mayúsculas;
// término vacío lista todo. El orden es el de carga/creación.
func (r *InventoryRepository) Search(term string, limit, offset int) ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	term = strings.ToLower(term)
	matched := make([]*entity.InventoryItem, 0, len(r.order))
	for _, id := range r.order {
		it := r.byID[id]
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Category), term) {
			continue
		}
		cp := it
		matched = append(matched, &cp)
	}
	return paginate(matched, limit, offset), nil
}

// BranchRepository repositorio en memoria de sucursales (solo lectura).
type BranchRepository struct {
	mu       sync.RWMutex
	branches []entity.Branch
}

// NewBranchRepository construye el repositorio con las sucursales dadas.
func NewBranchRepository(branches []entity.Branch) *BranchRepository {
	return &BranchRepository{branches: append([]entity.Branch(nil), branches...)}
}

// List devuelve todas las sucursales.
func (r *BranchRepository) List() ([]*entity.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Branch, 0, len(r.branches))
	for i := range r.branches {
		cp := r.branches[i]
		out = append(out, &cp)
	}
	return out, nil
}

// GetByID busca por ID y, como cortesía hacia la UI, también por nombre exacto.
func (r *BranchRepository) GetByID(id string) (*entity.Branch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.branches {
		if b.ID == id || b.Name == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}
