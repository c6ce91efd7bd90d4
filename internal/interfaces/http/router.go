package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brewflow-pos/internal/application/auth"
	"github.com/jhoicas/brewflow-pos/internal/application/pos"
	"github.com/jhoicas/brewflow-pos/internal/application/report"
	"github.com/jhoicas/brewflow-pos/internal/application/usecase"
	"github.com/jhoicas/brewflow-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	CatalogUC     *usecase.CatalogUseCase
	CartUC        *pos.CartUseCase
	InventoryUC   *usecase.InventoryUseCase
	ReportUC      *report.UseCase
	JWTSecret     string
	DefaultBranch string
}

// Router registra las rutas de la API.
//
// Roles por grupo (mismo gating que las páginas de la UI):
//   - POS / carrito: cashier o manager.
//   - Inventario y reportes: manager o admin.
//   - Catálogo: cualquier usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo (protegido, sin restricción de rol)
	products := protected.Group("/products")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products.Get("/categories", catalogHandler.Categories)
	products.Get("/", catalogHandler.List)
	products.Get("/:id", catalogHandler.GetByID)

	// Carrito POS (cashier o manager)
	cart := protected.Group("/cart", RequireRole(entity.RoleCashier, entity.RoleManager))
	cartHandler := NewCartHandler(deps.CartUC, deps.DefaultBranch)
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:productId", cartHandler.UpdateQuantity)
	cart.Delete("/items/:productId", cartHandler.RemoveItem)
	cart.Post("/checkout", cartHandler.Checkout)

	// Inventario (manager o admin)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory", RequireRole(entity.RoleManager, entity.RoleAdmin))
	inv.Get("/", inventoryHandler.Search)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/:id", inventoryHandler.GetByID)
	inv.Put("/:id", inventoryHandler.Update)
	inv.Delete("/:id", inventoryHandler.Delete)

	// Sucursales (cualquier usuario autenticado)
	protected.Get("/branches", inventoryHandler.Branches)

	// Reportes (manager o admin)
	reports := protected.Group("/reports", RequireRole(entity.RoleManager, entity.RoleAdmin))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/daily/export", reportHandler.Export)
}
