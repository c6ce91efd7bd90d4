package pos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brewflow-pos/internal/application/pos"
	"github.com/jhoicas/brewflow-pos/internal/domain"
	"github.com/jhoicas/brewflow-pos/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	sesionAna  = "user-ana"
	sesionLuis = "user-luis"
)

// newCartUseCase arma el caso de uso con el catálogo de demostración,
// repositorio de ventas vacío y el 8% de impuesto por defecto.
func newCartUseCase(t *testing.T) (*pos.CartUseCase, *memory.SaleRepository) {
	t.Helper()
	productRepo := memory.NewProductRepository()
	productRepo.Load(memory.SeedProducts(), memory.SeedCategories())
	saleRepo := memory.NewSaleRepository()
	return pos.NewCartUseCase(productRepo, saleRepo, decimal.RequireFromString("0.08")), saleRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de operaciones del carrito
// ──────────────────────────────────────────────────────────────────────────────

// Agregar dos veces el mismo producto fusiona la línea en vez de duplicarla.
func TestCartUseCase_AddItemFusionaLineas(t *testing.T) {
	uc, _ := newCartUseCase(t)

	_, err := uc.AddItem(sesionAna, "p1") // Espresso 2.50
	require.NoError(t, err)
	resp, err := uc.AddItem(sesionAna, "p1")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1, "el mismo producto no debe crear una segunda línea")
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "2.50", resp.Items[0].UnitPrice)
	assert.Equal(t, "5.00", resp.Items[0].LineTotal)
	assert.Equal(t, 2, resp.TotalUnits)
}

// Producto inexistente al agregar sí es un error: la UI envió un ID que
// el catálogo no reconoce.
func TestCartUseCase_AddItemProductoInexistente(t *testing.T) {
	uc, _ := newCartUseCase(t)

	_, err := uc.AddItem(sesionAna, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Escenario de referencia: 2 Espresso + 1 Croissant al 8%.
func TestCartUseCase_TotalesEscenarioReferencia(t *testing.T) {
	uc, _ := newCartUseCase(t)

	_, err := uc.AddItem(sesionAna, "p1") // Espresso 2.50
	require.NoError(t, err)
	_, err = uc.AddItem(sesionAna, "p1")
	require.NoError(t, err)
	resp, err := uc.AddItem(sesionAna, "p3") // Croissant 2.75
	require.NoError(t, err)

	assert.Equal(t, "7.75", resp.Subtotal)
	assert.Equal(t, "0.62", resp.Tax)
	assert.Equal(t, "8.37", resp.GrandTotal)
	assert.Equal(t, "$8.37", resp.DisplayTotal)
}

// Fijar cantidad menor a 1 elimina la línea; un ID desconocido es no-op.
func TestCartUseCase_UpdateQuantityEliminaYNoOp(t *testing.T) {
	uc, _ := newCartUseCase(t)
	_, err := uc.AddItem(sesionAna, "p1")
	require.NoError(t, err)

	resp := uc.UpdateQuantity(sesionAna, "p1", 0)
	assert.Empty(t, resp.Items, "cantidad 0 debe eliminar la línea")

	resp = uc.UpdateQuantity(sesionAna, "fantasma", 5)
	assert.Empty(t, resp.Items, "ID desconocido debe ser no-op silencioso")
	assert.Equal(t, "0.00", resp.Subtotal)
}

// Cada sesión de terminal tiene su propia orden: las mutaciones de una
// no se ven en la otra.
func TestCartUseCase_SesionesIndependientes(t *testing.T) {
	uc, _ := newCartUseCase(t)

	_, err := uc.AddItem(sesionAna, "p1")
	require.NoError(t, err)
	_, err = uc.AddItem(sesionLuis, "p2")
	require.NoError(t, err)

	ana := uc.Get(sesionAna)
	luis := uc.Get(sesionLuis)
	require.Len(t, ana.Items, 1)
	require.Len(t, luis.Items, 1)
	assert.Equal(t, "p1", ana.Items[0].ProductID)
	assert.Equal(t, "p2", luis.Items[0].ProductID)
}

// Clear deja la orden vacía con totales en cero.
func TestCartUseCase_Clear(t *testing.T) {
	uc, _ := newCartUseCase(t)
	_, err := uc.AddItem(sesionAna, "p5")
	require.NoError(t, err)

	resp := uc.Clear(sesionAna)
	assert.Empty(t, resp.Items)
	assert.Equal(t, "0.00", resp.GrandTotal)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de checkout
// ──────────────────────────────────────────────────────────────────────────────

// El checkout registra la venta con el total congelado (subtotal + impuesto)
// y vacía la orden de la sesión.
func TestCartUseCase_CheckoutRegistraVentaYVacia(t *testing.T) {
	uc, saleRepo := newCartUseCase(t)

	_, err := uc.AddItem(sesionAna, "p1") // Espresso 2.50
	require.NoError(t, err)
	_, err = uc.AddItem(sesionAna, "p1")
	require.NoError(t, err)
	_, err = uc.AddItem(sesionAna, "p3") // Croissant 2.75
	require.NoError(t, err)

	out, err := uc.Checkout(sesionAna, "Branch A")
	require.NoError(t, err)
	assert.NotEmpty(t, out.SaleID)
	assert.Equal(t, "Branch A", out.Branch)
	assert.Equal(t, "8.37", out.Total, "el total de la venta es el gran total de la orden")

	// La orden quedó vacía tras el cierre.
	assert.Empty(t, uc.Get(sesionAna).Items)

	// La venta quedó en el repositorio, consultable por fecha y sucursal.
	sales, err := saleRepo.ListByDateAndBranch(time.Now(), "Branch A")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, out.SaleID, sales[0].ID)
	assert.True(t, sales[0].Total.Equal(decimal.RequireFromString("8.37")))
	require.Len(t, sales[0].Items, 2)
	assert.Equal(t, 2, sales[0].Items[0].Quantity)
}

// Cerrar una orden vacía devuelve ErrEmptyOrder y no registra nada.
func TestCartUseCase_CheckoutOrdenVacia(t *testing.T) {
	uc, saleRepo := newCartUseCase(t)

	_, err := uc.Checkout(sesionAna, "Branch A")
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)

	sales, err := saleRepo.ListByDateAndBranch(time.Now(), "Branch A")
	require.NoError(t, err)
	assert.Empty(t, sales)
}
