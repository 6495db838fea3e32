package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/storekit/backend/internal/application/catalog"
	identityapp "github.com/storekit/backend/internal/application/identity"
	inventoryapp "github.com/storekit/backend/internal/application/inventory"
	partnerapp "github.com/storekit/backend/internal/application/partner"
	salesapp "github.com/storekit/backend/internal/application/sales"
	"github.com/storekit/backend/internal/infrastructure/auth"
	"github.com/storekit/backend/internal/infrastructure/config"
	"github.com/storekit/backend/internal/infrastructure/event"
	"github.com/storekit/backend/internal/infrastructure/logger"
	"github.com/storekit/backend/internal/infrastructure/persistence"
	"github.com/storekit/backend/internal/interfaces/http/handler"
	"github.com/storekit/backend/internal/interfaces/http/middleware"
	"github.com/storekit/backend/internal/interfaces/http/router"
)

func main() {
	var (
		configPath  string
		autoMigrate bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (optional)")
	flag.BoolVar(&autoMigrate, "migrate", false, "Run schema auto-migration on startup (development only)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting StoreKit backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Infrastructure
	db, err := persistence.NewDatabase(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if autoMigrate {
		if err := persistence.AutoMigrate(db); err != nil {
			log.Fatal("Auto-migration failed", zap.Error(err))
		}
		log.Info("Schema auto-migration complete")
	}

	jwtManager := auth.NewJWTManager(cfg.JWT)
	blacklist := auth.NewRedisTokenBlacklist(cfg.Redis)

	bus := event.NewInMemoryEventBus(log)
	bus.Subscribe(event.NewAuditHandler(log))

	// Repositories
	tenantRepo := persistence.NewGormTenantRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	supplierRepo := persistence.NewGormSupplierRepository(db)
	customerRepo := persistence.NewGormCustomerRepository(db)
	inventoryRepo := persistence.NewGormInventoryRepository(db)
	ledgerRepo := persistence.NewGormEntryRepository(db)
	saleRepo := persistence.NewGormSaleRepository(db)
	txManager := persistence.NewGormTransactionManager(db)

	// Application services
	tenantService := identityapp.NewTenantService(tenantRepo, bus)
	authService := identityapp.NewAuthService(userRepo, jwtManager, blacklist)
	productService := catalogapp.NewProductService(productRepo, bus)
	supplierService := partnerapp.NewSupplierService(supplierRepo, ledgerRepo, bus)
	customerService := partnerapp.NewCustomerService(customerRepo, ledgerRepo, bus)
	inventoryService := inventoryapp.NewInventoryService(inventoryRepo, productRepo, bus)
	salesService := salesapp.NewSalesService(saleRepo, productRepo, inventoryRepo, ledgerRepo, customerRepo, txManager, bus)

	// HTTP layer
	engine := router.New(router.Config{
		Logger:     log,
		Verifier:   authService,
		Resolver:   tenantService,
		BaseDomain: cfg.HTTP.BaseDomain,
		CORS:       middleware.DefaultCORSConfig(),
	}, router.Handlers{
		System:    handler.NewSystemHandler(db),
		Tenant:    handler.NewTenantHandler(tenantService),
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Customer:  handler.NewCustomerHandler(customerService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Sale:      handler.NewSaleHandler(salesService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("Server exited gracefully")
}
