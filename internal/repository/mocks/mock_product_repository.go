package mocks

import (
	"context"

	"bizflow/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, tenantID uint, categoryID *uint) ([]model.Product, error) {
	args := m.Called(ctx, tenantID, categoryID)
	if res := args.Get(0); res != nil {
		return res.([]model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, tenantID uint, product *model.Product) error {
	args := m.Called(ctx, tenantID, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, tenantID uint, product *model.Product) error {
	args := m.Called(ctx, tenantID, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, tenantID, id uint) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockProductRepository) ListLowStock(ctx context.Context, tenantID uint, threshold int) ([]model.Product, error) {
	args := m.Called(ctx, tenantID, threshold)
	if res := args.Get(0); res != nil {
		return res.([]model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
