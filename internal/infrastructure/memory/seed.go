package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// Datos de demostración de la cafetería. Sin persistencia, la aplicación
// arranca siempre con este estado.

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SeedCategories pestañas del POS.
func SeedCategories() []entity.Category {
	return []entity.Category{
		{ID: "coffee", Name: "Coffee"},
		{ID: "tea", Name: "Tea"},
		{ID: "pastries", Name: "Pastries"},
		{ID: "sandwiches", Name: "Sandwiches"},
	}
}

// SeedProducts catálogo de venta.
func SeedProducts() []entity.Product {
	now := time.Now()
	ps := []entity.Product{
		{ID: "p1", Name: "Espresso", Category: "coffee", Price: price("2.50"), Stock: 50, ImageURL: "https://picsum.photos/100/100?random=1"},
		{ID: "p2", Name: "Latte", Category: "coffee", Price: price("3.50"), Stock: 40, ImageURL: "https://picsum.photos/100/100?random=2"},
		{ID: "p3", Name: "Croissant", Category: "pastries", Price: price("2.75"), Stock: 30, ImageURL: "https://picsum.photos/100/100?random=3"},
		{ID: "p4", Name: "Green Tea", Category: "tea", Price: price("2.25"), Stock: 60, ImageURL: "https://picsum.photos/100/100?random=4"},
		{ID: "p5", Name: "Turkey Club", Category: "sandwiches", Price: price("6.50"), Stock: 20, ImageURL: "https://picsum.photos/100/100?random=5"},
		{ID: "p6", Name: "Cappuccino", Category: "coffee", Price: price("3.25"), Stock: 35, ImageURL: "https://picsum.photos/100/100?random=6"},
		{ID: "p7", Name: "Muffin", Category: "pastries", Price: price("2.00"), Stock: 45, ImageURL: "https://picsum.photos/100/100?random=7"},
	}
	for i := range ps {
		ps[i].CreatedAt = now
		ps[i].UpdatedAt = now
	}
	return ps
}

// SeedBranches sucursales de la cadena.
func SeedBranches() []entity.Branch {
	return []entity.Branch{
		{ID: "branch-a", Name: "Branch A"},
		{ID: "branch-b", Name: "Branch B"},
	}
}

// SeedInventory inventario inicial por sucursal.
func SeedInventory() []entity.InventoryItem {
	now := time.Now()
	items := []entity.InventoryItem{
		{ID: "i1", Name: "Espresso Beans", Category: "Raw Material", Stock: 100, Price: price("15.00"), Branch: "Branch A", ImageURL: "https://picsum.photos/40/40?random=10"},
		{ID: "i2", Name: "Milk (Gallon)", Category: "Dairy", Stock: 50, Price: price("3.50"), Branch: "Branch A", ImageURL: "https://picsum.photos/40/40?random=11"},
		{ID: "i3", Name: "Croissants (Box)", Category: "Baked Goods", Stock: 30, Price: price("12.00"), Branch: "Branch B", ImageURL: "https://picsum.photos/40/40?random=12"},
		{ID: "i4", Name: "Takeaway Cups (100pcs)", Category: "Supplies", Stock: 200, Price: price("8.00"), Branch: "Branch A", ImageURL: "https://picsum.photos/40/40?random=13"},
		{ID: "i5", Name: "Espresso Beans", Category: "Raw Material", Stock: 80, Price: price("15.00"), Branch: "Branch B", ImageURL: "https://picsum.photos/40/40?random=14"},
	}
	for i := range items {
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}

// SeedSales ventas de demostración para los reportes: algunas de hoy y
// algunas de un día fijo anterior, en ambas sucursales.
func SeedSales() []entity.Sale {
	hoy := time.Now()
	at := func(base time.Time, hour, min int) time.Time {
		return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
	}
	ayer := hoy.AddDate(0, 0, -1)
	return []entity.Sale{
		{
			ID: "T001", Branch: "Branch A", Time: at(ayer, 9, 15),
			Items: []entity.SaleItem{
				{ProductID: "p2", Name: "Latte", Quantity: 2, UnitPrice: price("3.50")},
				{ProductID: "p3", Name: "Croissant", Quantity: 1, UnitPrice: price("2.75")},
			},
			Total: price("9.75"),
		},
		{
			ID: "T002", Branch: "Branch A", Time: at(ayer, 9, 30),
			Items: []entity.SaleItem{
				{ProductID: "p1", Name: "Espresso", Quantity: 1, UnitPrice: price("2.50")},
			},
			Total: price("2.50"),
		},
		{
			ID: "T101", Branch: "Branch B", Time: at(ayer, 10, 5),
			Items: []entity.SaleItem{
				{ProductID: "p6", Name: "Cappuccino", Quantity: 1, UnitPrice: price("3.25")},
				{ProductID: "p7", Name: "Muffin", Quantity: 2, UnitPrice: price("2.00")},
			},
			Total: price("7.25"),
		},
		{
			ID: "T003", Branch: "Branch A", Time: at(hoy, 10, 15),
			Items: []entity.SaleItem{
				{ProductID: "p6", Name: "Cappuccino", Quantity: 1, UnitPrice: price("3.25")},
			},
			Total: price("3.25"),
		},
	}
}
