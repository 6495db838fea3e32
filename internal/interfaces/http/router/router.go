package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/storekit/backend/internal/domain/identity"
	"github.com/storekit/backend/internal/infrastructure/logger"
	"github.com/storekit/backend/internal/interfaces/http/handler"
	"github.com/storekit/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the handlers the router wires up
type Handlers struct {
	System    *handler.SystemHandler
	Tenant    *handler.TenantHandler
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Supplier  *handler.SupplierHandler
	Customer  *handler.CustomerHandler
	Inventory *handler.InventoryHandler
	Sale      *handler.SaleHandler
}

// Config holds the router dependencies beyond handlers
type Config struct {
	Logger     *zap.Logger
	Verifier   middleware.TokenVerifier
	Resolver   middleware.TenantResolver
	BaseDomain string
	CORS       middleware.CORSConfig
}

// New builds the gin engine with the full middleware chain and all
// routes registered
func New(cfg Config, h Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(cfg.Logger),
		logger.GinRecovery(cfg.Logger),
		middleware.CORS(cfg.CORS),
	)

	// Unscoped endpoints: health and store registration
	engine.GET("/health", h.System.Health)
	api := engine.Group("/api/v1")
	api.GET("/system/info", h.System.Info)
	api.POST("/tenants", h.Tenant.Create)

	// Everything below runs against a resolved tenant
	tenantScoped := api.Group("", middleware.ResolveTenant(cfg.Resolver, cfg.BaseDomain))
	tenantScoped.POST("/auth/login", h.Auth.Login)

	authed := tenantScoped.Group("", middleware.Auth(cfg.Verifier))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/me", h.Auth.Me)
		authed.POST("/auth/users",
			middleware.RequirePermission(identity.PermissionManageTenant), h.Auth.Register)

		tenants := authed.Group("/tenants",
			middleware.RequirePermission(identity.PermissionManageTenant))
		{
			tenants.GET("", h.Tenant.List)
			tenants.GET("/:id", h.Tenant.Get)
			tenants.PUT("/:id", h.Tenant.Update)
			tenants.POST("/:id/activate", h.Tenant.Activate)
			tenants.POST("/:id/deactivate", h.Tenant.Deactivate)
		}

		products := authed.Group("/products")
		{
			products.GET("", h.Product.List)
			products.GET("/:id", h.Product.Get)

			manage := products.Group("",
				middleware.RequirePermission(identity.PermissionManageProducts))
			{
				manage.POST("", h.Product.Create)
				manage.PUT("/:id", h.Product.Update)
				manage.PUT("/:id/pricing", h.Product.SetPricing)
				manage.POST("/:id/deactivate", h.Product.Deactivate)
			}
		}

		suppliers := authed.Group("/suppliers",
			middleware.RequirePermission(identity.PermissionManagePartners))
		{
			suppliers.GET("", h.Supplier.List)
			suppliers.GET("/:id", h.Supplier.Get)
			suppliers.GET("/:id/balance", h.Supplier.GetBalance)
			suppliers.POST("", h.Supplier.Create)
			suppliers.PUT("/:id", h.Supplier.Update)
			suppliers.DELETE("/:id", h.Supplier.Delete)
		}

		customers := authed.Group("/customers",
			middleware.RequirePermission(identity.PermissionManagePartners))
		{
			customers.GET("", h.Customer.List)
			customers.GET("/:id", h.Customer.Get)
			customers.GET("/:id/balance", h.Customer.GetBalance)
			customers.POST("", h.Customer.Create)
			customers.PUT("/:id", h.Customer.Update)
			customers.DELETE("/:id", h.Customer.Delete)
			customers.POST("/:id/payments", h.Customer.RecordPayment)
		}

		inventory := authed.Group("/inventory",
			middleware.RequirePermission(identity.PermissionManageInventory))
		{
			inventory.POST("/movements", h.Inventory.RecordMovement)
			inventory.GET("/products/:id", h.Inventory.GetStock)
			inventory.GET("/products/:id/movements", h.Inventory.ListMovements)
			inventory.GET("/low-stock", h.Inventory.ListLowStock)
		}

		sales := authed.Group("/sales",
			middleware.RequirePermission(identity.PermissionCreateSales))
		{
			sales.POST("", h.Sale.Create)
			sales.POST("/quote", h.Sale.Quote)
			sales.GET("", h.Sale.List)
			sales.GET("/:id", h.Sale.Get)
			sales.POST("/:id/cancel", h.Sale.Cancel)
		}
	}

	return engine
}
