package mocks

import (
	"context"

	"bizflow/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context, tenantID uint) ([]model.Customer, error) {
	args := m.Called(ctx, tenantID)
	if res := args.Get(0); res != nil {
		return res.([]model.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, tenantID uint, customer *model.Customer) error {
	args := m.Called(ctx, tenantID, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, tenantID uint, customer *model.Customer) error {
	args := m.Called(ctx, tenantID, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tenantID, id uint) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
