package mocks

import (
	"context"

	"bizflow/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context, tenantID uint) ([]model.Order, error) {
	args := m.Called(ctx, tenantID)
	if res := args.Get(0); res != nil {
		return res.([]model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrderWithItems(ctx context.Context, tenantID uint, order *model.Order, items []model.OrderItem) error {
	args := m.Called(ctx, tenantID, order, items)
	return args.Error(0)
}

func (m *MockOrderRepository) TotalRevenue(ctx context.Context, tenantID uint) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID)
	if res := args.Get(0); res != nil {
		return res.(decimal.Decimal), args.Error(1)
	}
	return decimal.Zero, args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, tenantID uint) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ListRecent(ctx context.Context, tenantID uint, limit int) ([]model.Order, error) {
	args := m.Called(ctx, tenantID, limit)
	if res := args.Get(0); res != nil {
		return res.([]model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
