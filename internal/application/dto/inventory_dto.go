package dto

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest entrada para crear un ítem de inventario.
type CreateInventoryItemRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"required"`
	Stock    int             `json:"stock" validate:"min=0"`
	Price    decimal.Decimal `json:"price"`
	Branch   string          `json:"branch" validate:"required"`
	ImageURL string          `json:"image_url"`
}

// UpdateInventoryItemRequest entrada para actualizar un ítem (campos opcionales).
type UpdateInventoryItemRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Stock    *int             `json:"stock" validate:"omitempty,min=0"`
	Price    *decimal.Decimal `json:"price"`
	Branch   *string          `json:"branch"`
	ImageURL *string          `json:"image_url"`
}

// InventoryItemResponse salida de un ítem de inventario.
type InventoryItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Stock    int    `json:"stock"`
	Price    string `json:"price"`
	Branch   string `json:"branch"`
	ImageURL string `json:"image_url,omitempty"`
}

// InventoryListResponse lista paginada de ítems.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// BranchResponse una sucursal.
type BranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
