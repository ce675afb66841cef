package service

import (
	"context"
	"errors"
	"fmt"

	"bizflow/internal/model"
	"bizflow/internal/repository"
	"bizflow/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrOrderTransactionFailed is the generic failure for the commit phase.
	// The underlying storage error is attached for logs, never for clients.
	ErrOrderTransactionFailed = errors.New("order transaction failed")
)

// PlaceOrderItem is a single requested line item
type PlaceOrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// PlaceOrderRequest is the input for placing an order
type PlaceOrderRequest struct {
	CustomerID uint             `json:"customer_id"`
	Items      []PlaceOrderItem `json:"items"`
}

// OrderService executes the order placement transaction under tenant
// isolation and inventory constraints.
type OrderService interface {
	PlaceOrder(ctx context.Context, tenantID uint, req PlaceOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context, tenantID uint) ([]model.Order, error)
	GetOrder(ctx context.Context, tenantID, orderID uint) (*model.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, customers repository.CustomerRepository) OrderService {
	return &orderService{
		orders:    orders,
		products:  products,
		customers: customers,
	}
}

// PlaceOrder converts a (customer, items) request into a persisted order.
//
// The customer and every product must belong to the acting tenant; a row
// owned by another tenant reads as not-found. Unit prices are captured here
// and copied onto the line items, so the stored order is immune to later
// price edits. The stock pre-check keeps expected failures mutation-free;
// the repository's conditional decrement closes the window between the
// pre-check and the commit.
func (s *orderService) PlaceOrder(ctx context.Context, tenantID uint, req PlaceOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	if _, err := s.customers.GetByID(ctx, tenantID, req.CustomerID); err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		product, err := s.products.GetByID(ctx, tenantID, reqItem.ProductID)
		if err != nil {
			return nil, err
		}
		if product.StockQuantity < reqItem.Quantity {
			return nil, repository.ErrInsufficientStock
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(reqItem.Quantity))))
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Quantity:  reqItem.Quantity,
			UnitPrice: product.Price,
		})
	}

	order := &model.Order{
		CustomerID:  req.CustomerID,
		TotalAmount: total,
		Status:      model.StatusCompleted,
	}

	if err := s.orders.CreateOrderWithItems(ctx, tenantID, order, items); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, err
		}
		logger.FromStdContext(ctx).Error("order transaction failed",
			zap.Uint("tenant_id", tenantID),
			zap.Uint("customer_id", req.CustomerID),
			zap.Int("item_count", len(items)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrOrderTransactionFailed, err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, tenantID uint) ([]model.Order, error) {
	return s.orders.List(ctx, tenantID)
}

func (s *orderService) GetOrder(ctx context.Context, tenantID, orderID uint) (*model.Order, error) {
	return s.orders.GetByID(ctx, tenantID, orderID)
}
