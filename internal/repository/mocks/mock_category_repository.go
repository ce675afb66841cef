package mocks

import (
	"context"

	"bizflow/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context, tenantID uint) ([]model.Category, error) {
	args := m.Called(ctx, tenantID)
	if res := args.Get(0); res != nil {
		return res.([]model.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Category, error) {
	args := m.Called(ctx, tenantID, id)
	if res := args.Get(0); res != nil {
		return res.(*model.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, tenantID uint, category *model.Category) error {
	args := m.Called(ctx, tenantID, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, tenantID uint, category *model.Category) error {
	args := m.Called(ctx, tenantID, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, tenantID, id uint) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
