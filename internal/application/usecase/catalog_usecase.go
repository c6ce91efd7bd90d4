package usecase

import (
	"github.com/jhoicas/brewflow-pos/internal/application/dto"
	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
	"github.com/jhoicas/brewflow-pos/internal/domain/repository"
	"github.com/jhoicas/brewflow-pos/pkg/money"
)

// CatalogUseCase lectura del catálogo de venta: productos por categoría y
// lista de categorías. El catálogo es solo lectura para el POS.
type CatalogUseCase struct {
	repo repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List lista productos con paginación; category vacío o "all" lista todo.
func (uc *CatalogUseCase) List(category string, limit, offset int) (*dto.ProductListResponse, error) {
	var (
		list []*entity.Product
		err  error
	)
	if category == "" || category == "all" {
		list, err = uc.repo.List(limit, offset)
	} else {
		list, err = uc.repo.ListByCategory(category, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetByID obtiene un producto por ID (nil si no existe).
func (uc *CatalogUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p), nil
}

// Categories lista las categorías del catálogo (pestañas del POS).
func (uc *CatalogUseCase) Categories() ([]dto.CategoryResponse, error) {
	cats, err := uc.repo.Categories()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    money.Fixed(p.Price),
		Stock:    p.Stock,
		ImageURL: p.ImageURL,
	}
}
