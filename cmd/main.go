package main

import (
	"net/http"

	"bizflow/internal/handler"
	mid "bizflow/internal/middleware"
	"bizflow/internal/repository"
	"bizflow/internal/service"
	"bizflow/pkg/config"
	"bizflow/pkg/database"
	"bizflow/pkg/jwtutil"
	"bizflow/pkg/logger"
	"bizflow/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting bizflow",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", cfg.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if cfg.SeedDemo {
		if err := database.SeedDemoData(); err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
		log.Info("Demo data seeded")
	}

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services and handlers
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo)

	authHandler := handler.NewAuthHandler(userRepo)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	supplierHandler := handler.NewSupplierHandler(supplierRepo)
	productHandler := handler.NewProductHandler(productRepo)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	orderHandler := handler.NewOrderHandler(orderService)
	dashboardHandler := handler.NewDashboardHandler(orderRepo, productRepo, cfg.Inventory.LowStockThreshold)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth routes
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// Product API routes - auth middleware validates JWT and sets the tenant
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", productHandler.ListProducts)
	productAPI.GET("/:id", productHandler.GetProduct)
	productAPI.POST("", productHandler.CreateProduct)
	productAPI.PUT("/:id", productHandler.UpdateProduct)
	productAPI.DELETE("/:id", productHandler.DeleteProduct)

	// Category API routes
	categoryAPI := e.Group("/api/categories", mid.AuthMiddleware)
	categoryAPI.GET("", categoryHandler.ListCategories)
	categoryAPI.GET("/:id", categoryHandler.GetCategory)
	categoryAPI.POST("", categoryHandler.CreateCategory)
	categoryAPI.PUT("/:id", categoryHandler.UpdateCategory)
	categoryAPI.DELETE("/:id", categoryHandler.DeleteCategory)

	// Supplier API routes
	supplierAPI := e.Group("/api/suppliers", mid.AuthMiddleware)
	supplierAPI.GET("", supplierHandler.ListSuppliers)
	supplierAPI.GET("/:id", supplierHandler.GetSupplier)
	supplierAPI.POST("", supplierHandler.CreateSupplier)
	supplierAPI.PUT("/:id", supplierHandler.UpdateSupplier)
	supplierAPI.DELETE("/:id", supplierHandler.DeleteSupplier)

	// Customer API routes
	customerAPI := e.Group("/api/customers", mid.AuthMiddleware)
	customerAPI.GET("", customerHandler.ListCustomers)
	customerAPI.GET("/:id", customerHandler.GetCustomer)
	customerAPI.POST("", customerHandler.CreateCustomer)
	customerAPI.PUT("/:id", customerHandler.UpdateCustomer)
	customerAPI.DELETE("/:id", customerHandler.DeleteCustomer)

	// Order API routes
	orderAPI := e.Group("/api/orders", mid.AuthMiddleware)
	orderAPI.GET("", orderHandler.ListOrders)
	orderAPI.GET("/:id", orderHandler.GetOrder)
	orderAPI.POST("", orderHandler.CreateOrder)

	// Dashboard
	e.GET("/api/dashboard", dashboardHandler.GetDashboard, mid.AuthMiddleware)

	// Start server
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
