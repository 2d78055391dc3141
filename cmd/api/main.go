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

	"github.com/elparadero/inventario-api/internal/application/auth"
	"github.com/elparadero/inventario-api/internal/application/dataset"
	"github.com/elparadero/inventario-api/internal/application/usecase"
	infrapdf "github.com/elparadero/inventario-api/internal/infrastructure/pdf"
	"github.com/elparadero/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/elparadero/inventario-api/internal/interfaces/http"
	"github.com/elparadero/inventario-api/pkg/config"
	"github.com/elparadero/inventario-api/pkg/logger"
)

// Nombre comercial que encabeza los reportes.
const businessName = "El Paradero del Cristiano"

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, brandRepo, supplierRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, productRepo, log)

	exportUC := dataset.NewExportUseCase(productRepo, transactionRepo, categoryRepo, brandRepo, supplierRepo)
	importUC := dataset.NewImportUseCase(txRunner, log)

	reportGenerator := infrapdf.NewMarotoReportGenerator(businessName)
	reportUC := dataset.NewReportUseCase(
		productRepo, transactionRepo, categoryRepo, brandRepo, supplierRepo, reportGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		ProductUC:     productUC,
		CatalogUC:     catalogUC,
		TransactionUC: transactionUC,
		ExportUC:      exportUC,
		ImportUC:      importUC,
		ReportUC:      reportUC,
		JWTSecret:     cfg.JWT.Secret,
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
