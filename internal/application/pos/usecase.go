// Package pos expone el agregador de órdenes a la capa HTTP: un carrito por
// sesión de terminal, operado con snapshots inmutables del dominio order.
package pos

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewflow-pos/internal/application/dto"
	"github.com/jhoicas/brewflow-pos/internal/domain"
	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
	"github.com/jhoicas/brewflow-pos/internal/domain/order"
	"github.com/jhoicas/brewflow-pos/internal/domain/repository"
	"github.com/jhoicas/brewflow-pos/pkg/money"
)

// CartUseCase mantiene las órdenes en curso, una por sesión de terminal.
// Las operaciones del carrito son puras; el mapa de sesiones se serializa con
// un único mutex (escritor único), de modo que jamás se observa un carrito a
// medio mutar. No hay persistencia: las órdenes viven en memoria y se pierden
// al reiniciar.
type CartUseCase struct {
	mu    sync.Mutex
	carts map[string]order.Cart

	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	taxRate     decimal.Decimal
}

// NewCartUseCase construye el caso de uso. taxRate viene de configuración
// (varía por jurisdicción) y se aplica a todas las órdenes de esta instancia.
func NewCartUseCase(productRepo repository.ProductRepository, saleRepo repository.SaleRepository, taxRate decimal.Decimal) *CartUseCase {
	return &CartUseCase{
		carts:       make(map[string]order.Cart),
		productRepo: productRepo,
		saleRepo:    saleRepo,
		taxRate:     taxRate,
	}
}

// Get devuelve el snapshot de la orden en curso de la sesión (vacía si no existe).
func (uc *CartUseCase) Get(sessionID string) *dto.CartResponse {
	uc.mu.Lock()
	c := uc.carts[sessionID]
	uc.mu.Unlock()
	return uc.toResponse(c)
}

// AddItem agrega una unidad del producto a la orden de la sesión.
// Producto inexistente devuelve ErrNotFound: a diferencia de las mutaciones
// sobre líneas ya existentes, aquí la UI mandó un ID que el catálogo no
// reconoce y eso sí es un error del llamador.
func (uc *CartUseCase) AddItem(sessionID, productID string) (*dto.CartResponse, error) {
	p, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	uc.mu.Lock()
	c := uc.carts[sessionID].AddItem(*p)
	uc.carts[sessionID] = c
	uc.mu.Unlock()

	return uc.toResponse(c), nil
}

// UpdateQuantity fija la cantidad de una línea; menor a 1 la elimina.
// Un productID ausente es no-op silencioso (la UI puede ir atrasada).
func (uc *CartUseCase) UpdateQuantity(sessionID, productID string, quantity int) *dto.CartResponse {
	uc.mu.Lock()
	c := uc.carts[sessionID].UpdateQuantity(productID, quantity)
	uc.carts[sessionID] = c
	uc.mu.Unlock()
	return uc.toResponse(c)
}

// RemoveItem elimina la línea del producto; no-op si no existe.
func (uc *CartUseCase) RemoveItem(sessionID, productID string) *dto.CartResponse {
	uc.mu.Lock()
	c := uc.carts[sessionID].RemoveItem(productID)
	uc.carts[sessionID] = c
	uc.mu.Unlock()
	return uc.toResponse(c)
}

// Clear vacía la orden de la sesión (reset explícito).
func (uc *CartUseCase) Clear(sessionID string) *dto.CartResponse {
	uc.mu.Lock()
	c := uc.carts[sessionID].Clear()
	uc.carts[sessionID] = c
	uc.mu.Unlock()
	return uc.toResponse(c)
}

// Checkout cierra la orden: registra una venta con el total congelado
// (subtotal + impuesto) y vacía el carrito. Orden vacía devuelve ErrEmptyOrder.
func (uc *CartUseCase) Checkout(sessionID, branch string) (*dto.CheckoutResponse, error) {
	uc.mu.Lock()
	c := uc.carts[sessionID]
	if c.IsEmpty() {
		uc.mu.Unlock()
		return nil, domain.ErrEmptyOrder
	}
	uc.carts[sessionID] = c.Clear()
	uc.mu.Unlock()

	tot := c.Totals(uc.taxRate)
	items := make([]entity.SaleItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entity.SaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	sale := &entity.Sale{
		ID:     uuid.New().String(),
		Branch: branch,
		Time:   time.Now(),
		Items:  items,
		Total:  tot.GrandTotal,
	}
	if err := uc.saleRepo.Append(sale); err != nil {
		return nil, err
	}
	return &dto.CheckoutResponse{
		SaleID: sale.ID,
		Branch: branch,
		Total:  money.Fixed(sale.Total),
	}, nil
}

// toResponse proyecta el snapshot a DTO; aquí y solo aquí se redondea a dos decimales.
func (uc *CartUseCase) toResponse(c order.Cart) *dto.CartResponse {
	tot := c.Totals(uc.taxRate)
	items := make([]dto.LineItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.LineItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: money.Fixed(it.UnitPrice),
			LineTotal: money.Fixed(it.LineTotal),
		})
	}
	return &dto.CartResponse{
		Items:        items,
		Subtotal:     money.Fixed(tot.Subtotal),
		TaxRate:      uc.taxRate.String(),
		Tax:          money.Fixed(tot.Tax),
		GrandTotal:   money.Fixed(tot.GrandTotal),
		DisplayTotal: money.Display(tot.GrandTotal),
		TotalUnits:   c.TotalUnits(),
	}
}
