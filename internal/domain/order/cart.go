// Package order implementa el motor de agregación de órdenes del POS:
// fusionar o insertar líneas, mutar cantidades y derivar totales.
//
// Todas las operaciones son puras y síncronas: reciben el carrito por valor
// y devuelven un snapshot nuevo y consistente (disciplina reducer). Nunca se
// muta una línea dejando totales obsoletos, y ninguna operación cruza el
// límite del paquete con un error: las entradas inválidas degradan a no-op
// o a eliminación según la política de cada operación.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// LineItem es una línea del carrito: un producto con su cantidad y precio.
// UnitPrice se copia del producto al momento de agregarlo, de modo que un
// cambio posterior de precio en el catálogo no altera la orden en curso.
type LineItem struct {
	ProductID string
	Name      string
	Quantity  int // siempre >= 1; una cantidad menor elimina la línea
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal // derivado = Quantity * UnitPrice
}

// Cart es la secuencia ordenada de líneas de la orden en curso.
// El orden de inserción se preserva: la primera línea agregada se muestra primero.
// Invariante: a lo sumo una línea por ProductID.
type Cart struct {
	Items []LineItem
}

// Totals son los totales derivados de un carrito para una tasa de impuesto dada.
// Se mantienen con precisión completa; el redondeo a dos decimales ocurre
// solo en la frontera de presentación.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// New crea un carrito vacío.
func New() Cart {
	return Cart{}
}

// IsEmpty indica si el carrito no tiene líneas.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find devuelve la línea para productID, si existe.
func (c Cart) Find(productID string) (LineItem, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return LineItem{}, false
}

// AddItem agrega una unidad del producto: si ya existe una línea para su ID,
// incrementa la cantidad en 1 y recalcula LineTotal; si no, inserta una línea
// nueva al final con cantidad 1 y el precio actual del producto.
// No valida stock: el stock es dato informativo del catálogo.
func (c Cart) AddItem(p entity.Product) Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)

	for i, it := range items {
		if it.ProductID == p.ID {
			it.Quantity++
			it.LineTotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			items[i] = it
			return Cart{Items: items}
		}
	}

	items = append(items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  1,
		UnitPrice: p.Price,
		LineTotal: p.Price,
	})
	return Cart{Items: items}
}

// UpdateQuantity fija la cantidad de la línea de productID y recalcula su total.
// Política: una cantidad menor a 1 elimina la línea (nunca se almacena cantidad
// cero o negativa). Si productID no existe es un no-op silencioso: el estado de
// la UI puede ir atrasado respecto del carrito y eso no debe romper nada.
func (c Cart) UpdateQuantity(productID string, quantity int) Cart {
	if quantity < 1 {
		return c.RemoveItem(productID)
	}
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)

	for i, it := range items {
		if it.ProductID == productID {
			it.Quantity = quantity
			it.LineTotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
			items[i] = it
			break
		}
	}
	return Cart{Items: items}
}

// RemoveItem elimina la línea de productID si está presente; no-op si no existe.
// Es idempotente: aplicarla dos veces equivale a aplicarla una.
func (c Cart) RemoveItem(productID string) Cart {
	items := make([]LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return Cart{Items: items}
}

// Clear vacía el carrito (post-pago o fin de sesión).
func (c Cart) Clear() Cart {
	return Cart{}
}

// Totals deriva subtotal, impuesto y total para la tasa indicada.
// taxRate es configuración del llamador (ej. 0.08) y puede variar por sucursal;
// no se codifica dentro del agregador.
func (c Cart) Totals(taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range c.Items {
		subtotal = subtotal.Add(it.LineTotal)
	}
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// TotalUnits devuelve la cantidad total de unidades del carrito.
func (c Cart) TotalUnits() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
