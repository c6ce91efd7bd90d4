package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/brewflow-pos/internal/application/auth"
	"github.com/jhoicas/brewflow-pos/internal/application/pos"
	"github.com/jhoicas/brewflow-pos/internal/application/report"
	"github.com/jhoicas/brewflow-pos/internal/application/usecase"
	"github.com/jhoicas/brewflow-pos/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/brewflow-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/brewflow-pos/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/brewflow-pos/internal/interfaces/http"
	"github.com/jhoicas/brewflow-pos/pkg/config"
	"github.com/jhoicas/brewflow-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tax_rate", cfg.POS.TaxRate.String()).
		Msg("iniciando aplicación")

	// Repositorios en memoria con datos de demostración (sin persistencia:
	// el estado vive lo que vive el proceso).
	productRepo := memory.NewProductRepository()
	productRepo.Load(memory.SeedProducts(), memory.SeedCategories())
	inventoryRepo := memory.NewInventoryRepository()
	inventoryRepo.Load(memory.SeedInventory())
	branchRepo := memory.NewBranchRepository(memory.SeedBranches())
	saleRepo := memory.NewSaleRepository()
	saleRepo.Load(memory.SeedSales())
	userRepo := memory.NewUserRepository()

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := usecase.NewCatalogUseCase(productRepo)
	cartUC := pos.NewCartUseCase(productRepo, saleRepo, cfg.POS.TaxRate)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, branchRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	xmlBuilder := xmlexport.NewReportXMLBuilder()
	reportUC := report.NewUseCase(saleRepo, branchRepo, pdfGenerator, xmlBuilder)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BrewFlow POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CatalogUC:     catalogUC,
		CartUC:        cartUC,
		InventoryUC:   inventoryUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
		DefaultBranch: cfg.POS.DefaultBranch,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
