package handler

import (
	"net/http"

	"bizflow/internal/middleware"
	"bizflow/internal/repository"
	"bizflow/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const recentOrderLimit = 5

type DashboardHandler struct {
	orders            repository.OrderRepository
	products          repository.ProductRepository
	lowStockThreshold int
}

func NewDashboardHandler(orders repository.OrderRepository, products repository.ProductRepository, lowStockThreshold int) *DashboardHandler {
	return &DashboardHandler{
		orders:            orders,
		products:          products,
		lowStockThreshold: lowStockThreshold,
	}
}

// GetDashboard returns the tenant's revenue, order count, low-stock products
// and most recent orders in one response
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	ctx := c.Request().Context()

	// Cancelled orders do not count toward revenue
	revenue, err := h.orders.TotalRevenue(ctx, tenantID)
	if err != nil {
		log.Error("Failed to compute revenue", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load dashboard"})
	}

	orderCount, err := h.orders.Count(ctx, tenantID)
	if err != nil {
		log.Error("Failed to count orders", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load dashboard"})
	}

	lowStock, err := h.products.ListLowStock(ctx, tenantID, h.lowStockThreshold)
	if err != nil {
		log.Error("Failed to list low-stock products", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load dashboard"})
	}

	recentOrders, err := h.orders.ListRecent(ctx, tenantID, recentOrderLimit)
	if err != nil {
		log.Error("Failed to list recent orders", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to load dashboard"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_revenue":   revenue,
		"total_orders":    orderCount,
		"low_stock_count": len(lowStock),
		"low_stock_items": lowStock,
		"recent_orders":   recentOrders,
	})
}
