package handler

import (
	"errors"
	"net/http"

	"bizflow/internal/middleware"
	"bizflow/internal/repository"
	"bizflow/internal/service"
	"bizflow/pkg/logger"
	"bizflow/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderRequest defines the structure for order placement. Either a single
// product_id/quantity pair or an items list is accepted; the single form is
// folded into a one-item list.
type OrderRequest struct {
	CustomerID uint                     `json:"customer_id"`
	ProductID  uint                     `json:"product_id"`
	Quantity   int                      `json:"quantity"`
	Items      []service.PlaceOrderItem `json:"items"`
}

type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ListOrders retrieves the tenant's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	orders, err := h.orders.ListOrders(c.Request().Context(), tenantID)
	if err != nil {
		log.Error("Failed to retrieve orders", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve orders"})
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder retrieves a single order with its line items
func (h *OrderHandler) GetOrder(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	order, err := h.orders.GetOrder(c.Request().Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			log.Warn("Order not found",
				zap.Uint("order_id", id),
				zap.Uint("tenant_id", tenantID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Order not found"})
		}
		log.Error("Failed to get order", zap.Uint("order_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve order"})
	}

	return c.JSON(http.StatusOK, order)
}

// CreateOrder places an order for the acting tenant
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		prometheus.RecordOrderError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	items := req.Items
	if len(items) == 0 && req.ProductID != 0 {
		items = []service.PlaceOrderItem{{ProductID: req.ProductID, Quantity: req.Quantity}}
	}

	order, err := h.orders.PlaceOrder(c.Request().Context(), tenantID, service.PlaceOrderRequest{
		CustomerID: req.CustomerID,
		Items:      items,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder), errors.Is(err, service.ErrInvalidQuantity):
			log.Warn("Invalid order request", zap.Uint("tenant_id", tenantID), zap.Error(err))
			prometheus.RecordOrderError("invalid_request")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrProductNotFound):
			log.Warn("Product not found for order",
				zap.Uint("tenant_id", tenantID),
				zap.Uint("customer_id", req.CustomerID))
			prometheus.RecordOrderError("product_not_found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		case errors.Is(err, repository.ErrCustomerNotFound):
			log.Warn("Customer not found for order",
				zap.Uint("tenant_id", tenantID),
				zap.Uint("customer_id", req.CustomerID))
			prometheus.RecordOrderError("customer_not_found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Customer not found"})
		case errors.Is(err, repository.ErrInsufficientStock):
			log.Warn("Insufficient stock for order", zap.Uint("tenant_id", tenantID))
			prometheus.RecordOrderError("insufficient_stock")
			return c.JSON(http.StatusConflict, echo.Map{"error": "Not enough stock"})
		}
		// Transaction failure: detail stays in the logs, the client gets a
		// generic message.
		log.Error("Order placement failed", zap.Uint("tenant_id", tenantID), zap.Error(err))
		prometheus.RecordOrderError("transaction_failure")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to place order"})
	}

	prometheus.OrdersPlacedCounter.Inc()
	log.Info("Order placed successfully",
		zap.Uint("order_id", order.ID),
		zap.Uint("tenant_id", tenantID),
		zap.Uint("customer_id", order.CustomerID),
		zap.String("total_amount", order.TotalAmount.String()))
	return c.JSON(http.StatusCreated, order)
}
