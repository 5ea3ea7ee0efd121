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

	"github.com/factora/pos-api/internal/application/auth"
	"github.com/factora/pos-api/internal/application/inventory"
	"github.com/factora/pos-api/internal/application/usecase"
	infrapdf "github.com/factora/pos-api/internal/infrastructure/pdf"
	"github.com/factora/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/factora/pos-api/internal/interfaces/http"
	"github.com/factora/pos-api/pkg/config"
	"github.com/factora/pos-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	warrantyRepo := postgres.NewWarrantyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	alloc := postgres.NewIDAllocator(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := inventory.NewEngine(txRunner, inventory.Config{
		TxTimeout:           cfg.Engine.TxTimeout,
		MaxAllocRetries:     cfg.Engine.MaxAllocRetries,
		RejectNegativeStock: cfg.Engine.RejectNegativeStock,
	})

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	productUC := usecase.NewProductUseCase(engine, productRepo)
	movementUC := usecase.NewMovementUseCase(engine, movementRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, alloc)
	clientUC := usecase.NewClientUseCase(clientRepo, alloc)
	saleUC := usecase.NewSaleUseCase(txRunner, engine, saleRepo, productRepo, userRepo, receiptGen)
	warrantyUC := usecase.NewWarrantyUseCase(warrantyRepo, productRepo, alloc)
	authUC := auth.NewAuthUseCase(userRepo, alloc, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Raw()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Factora POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		MovementUC: movementUC,
		SupplierUC: supplierUC,
		ClientUC:   clientUC,
		SaleUC:     saleUC,
		WarrantyUC: warrantyUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
