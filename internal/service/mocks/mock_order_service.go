package mocks

import (
	"context"

	"bizflow/internal/model"
	"bizflow/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, tenantID uint, req service.PlaceOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, tenantID, req)
	if res := args.Get(0); res != nil {
		return res.(*model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, tenantID uint) ([]model.Order, error) {
	args := m.Called(ctx, tenantID)
	if res := args.Get(0); res != nil {
		return res.([]model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, tenantID, orderID uint) (*model.Order, error) {
	args := m.Called(ctx, tenantID, orderID)
	if res := args.Get(0); res != nil {
		return res.(*model.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
