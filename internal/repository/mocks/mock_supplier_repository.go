package mocks

import (
	"context"

	"bizflow/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) List(ctx context.Context, tenantID uint) ([]model.Supplier, error) {
	args := m.Called(ctx, tenantID)
	if res := args.Get(0); res != nil {
		return res.([]model.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Supplier, error) {
	args := m.Called(ctx, tenantID, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSupplierRepository) Create(ctx context.Context, tenantID uint, supplier *model.Supplier) error {
	args := m.Called(ctx, tenantID, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Update(ctx context.Context, tenantID uint, supplier *model.Supplier) error {
	args := m.Called(ctx, tenantID, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, tenantID, id uint) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
