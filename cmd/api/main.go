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
	appanalytics "github.com/tu-usuario/pos-pro/internal/application/analytics"
	"github.com/tu-usuario/pos-pro/internal/application/auth"
	"github.com/tu-usuario/pos-pro/internal/application/inventory"
	"github.com/tu-usuario/pos-pro/internal/application/sales"
	"github.com/tu-usuario/pos-pro/internal/application/usecase"
	"github.com/tu-usuario/pos-pro/internal/infrastructure/notify"
	infrapdf "github.com/tu-usuario/pos-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pos-pro/internal/interfaces/http"
	"github.com/tu-usuario/pos-pro/pkg/config"
	"github.com/tu-usuario/pos-pro/pkg/logger"
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

	// Repositorios atados al pool (las operaciones de escritura del motor
	// reciben sus propios repos atados a la transacción vía TxRunner).
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de stock: única vía de escritura sobre inventario
	notifier := notify.NewLowStockLogNotifier(log)
	engine := inventory.NewEngine(txRunner, notifier)

	stockQueryUC := inventory.NewStockQueryUseCase(stockRepo, movementRepo)
	adjustUC := inventory.NewAdjustStockUseCase(txRunner, engine, productRepo, branchRepo)
	transferUC := inventory.NewTransferUseCase(txRunner, engine, productRepo, branchRepo)

	checkoutUC := sales.NewCheckoutUseCase(txRunner, engine, productRepo, branchRepo)
	saleQueryUC := sales.NewSaleQueryUseCase(saleRepo)
	returnUC := sales.NewReturnSaleUseCase(txRunner, engine, saleRepo)

	// PDF: recibo de venta
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptPDFUseCase(saleRepo, productRepo, branchRepo, customerRepo, receiptGenerator)

	productUC := usecase.NewProductUseCase(productRepo, branchRepo, stockRepo, engine)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		BranchUC:    branchUC,
		CategoryUC:  categoryUC,
		CustomerUC:  customerUC,
		UserUC:      userUC,
		SettingsUC:  settingsUC,
		StockQuery:  stockQueryUC,
		AdjustUC:    adjustUC,
		TransferUC:  transferUC,
		CheckoutUC:  checkoutUC,
		SaleQuery:   saleQueryUC,
		ReturnUC:    returnUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
