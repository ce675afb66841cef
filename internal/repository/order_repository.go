package repository

import (
	"context"
	"errors"
	"time"

	"bizflow/internal/model"
	"bizflow/prometheus"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	List(ctx context.Context, tenantID uint) ([]model.Order, error)
	GetByID(ctx context.Context, tenantID, id uint) (*model.Order, error)
	CreateOrderWithItems(ctx context.Context, tenantID uint, order *model.Order, items []model.OrderItem) error
	TotalRevenue(ctx context.Context, tenantID uint) (decimal.Decimal, error)
	Count(ctx context.Context, tenantID uint) (int64, error)
	ListRecent(ctx context.Context, tenantID uint, limit int) ([]model.Order, error)
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) List(ctx context.Context, tenantID uint) ([]model.Order, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("user_id = ?", tenantID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Order, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var order model.Order
	result := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items").
		Where("id = ? AND user_id = ?", id, tenantID).
		First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, result.Error
	}
	return &order, nil
}

// CreateOrderWithItems persists the order, its items and the stock decrements
// as one transaction. The decrement is conditional on remaining stock, so two
// concurrent orders against the same product can never both succeed when only
// one fits: the loser sees zero affected rows, gets ErrInsufficientStock and
// the whole transaction rolls back.
func (r *gormOrderRepository) CreateOrderWithItems(ctx context.Context, tenantID uint, order *model.Order, items []model.OrderItem) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	order.UserID = tenantID
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	if order.Status == "" {
		order.Status = model.StatusCompleted
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		for i := range items {
			result := tx.Model(&model.Product{}).
				Where("id = ? AND user_id = ? AND stock_quantity >= ?",
					items[i].ProductID, tenantID, items[i].Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", items[i].Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Stock was consumed between the service's pre-check and
				// this decrement, or the product vanished.
				return ErrInsufficientStock
			}
		}

		order.Items = items
		return nil
	})
}

func (r *gormOrderRepository) TotalRevenue(ctx context.Context, tenantID uint) (decimal.Decimal, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("user_id = ? AND status <> ?", tenantID, model.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *gormOrderRepository) Count(ctx context.Context, tenantID uint) (int64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("user_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *gormOrderRepository) ListRecent(ctx context.Context, tenantID uint, limit int) ([]model.Order, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("user_id = ?", tenantID).
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
