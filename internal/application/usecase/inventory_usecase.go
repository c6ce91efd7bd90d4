package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/brewflow-pos/internal/application/dto"
	"github.com/jhoicas/brewflow-pos/internal/domain"
	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
	"github.com/jhoicas/brewflow-pos/internal/domain/repository"
	"github.com/jhoicas/brewflow-pos/pkg/money"
)

// InventoryUseCase CRUD de ítems de inventario por sucursal, con búsqueda por
// nombre o categoría. Independiente del agregador de órdenes.
type InventoryUseCase struct {
	repo       repository.InventoryRepository
	branchRepo repository.BranchRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, branchRepo repository.BranchRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, branchRepo: branchRepo}
}

// Create crea un ítem. La sucursal debe existir.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.Name == "" || in.Category == "" || in.Branch == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.validateBranch(in.Branch); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Stock:     in.Stock,
		Price:     in.Price,
		Branch:    in.Branch,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// GetByID obtiene un ítem por ID (nil si no existe).
func (uc *InventoryUseCase) GetByID(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toInventoryItemResponse(item), nil
}

// Update actualiza campos presentes del ítem (nil si no existe).
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.Stock = *in.Stock
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.Price = *in.Price
	}
	if in.Branch != nil {
		if err := uc.validateBranch(*in.Branch); err != nil {
			return nil, err
		}
		item.Branch = *in.Branch
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Delete elimina un ítem por ID.
func (uc *InventoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Search lista ítems filtrando por término en nombre o categoría
// (sin distinguir mayúsculas); término vacío lista todo.
func (uc *InventoryUseCase) Search(term string, limit, offset int) (*dto.InventoryListResponse, error) {
	list, err := uc.repo.Search(term, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toInventoryItemResponse(it))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Branches lista las sucursales disponibles.
func (uc *InventoryUseCase) Branches() ([]dto.BranchResponse, error) {
	list, err := uc.branchRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BranchResponse{ID: b.ID, Name: b.Name})
	}
	return out, nil
}

func (uc *InventoryUseCase) validateBranch(name string) error {
	list, err := uc.branchRepo.List()
	if err != nil {
		return err
	}
	for _, b := range list {
		if b.Name == name {
			return nil
		}
	}
	return domain.ErrInvalidInput
}

func toInventoryItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	if it == nil {
		return nil
	}
	return &dto.InventoryItemResponse{
		ID:       it.ID,
		Name:     it.Name,
		Category: it.Category,
		Stock:    it.Stock,
		Price:    money.Fixed(it.Price),
		Branch:   it.Branch,
		ImageURL: it.ImageURL,
	}
}
