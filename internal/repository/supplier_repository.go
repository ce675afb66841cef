package repository

import (
	"context"
	"errors"
	"time"

	"bizflow/internal/model"
	"bizflow/prometheus"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	List(ctx context.Context, tenantID uint) ([]model.Supplier, error)
	GetByID(ctx context.Context, tenantID, id uint) (*model.Supplier, error)
	Create(ctx context.Context, tenantID uint, supplier *model.Supplier) error
	Update(ctx context.Context, tenantID uint, supplier *model.Supplier) error
	Delete(ctx context.Context, tenantID, id uint) error
}

type gormSupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &gormSupplierRepository{db: db}
}

func (r *gormSupplierRepository) List(ctx context.Context, tenantID uint) ([]model.Supplier, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var suppliers []model.Supplier
	if err := r.db.WithContext(ctx).Where("user_id = ?", tenantID).Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *gormSupplierRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Supplier, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var supplier model.Supplier
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, tenantID).First(&supplier)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, result.Error
	}
	return &supplier, nil
}

func (r *gormSupplierRepository) Create(ctx context.Context, tenantID uint, supplier *model.Supplier) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	supplier.UserID = tenantID
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *gormSupplierRepository) Update(ctx context.Context, tenantID uint, supplier *model.Supplier) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.db.WithContext(ctx).Model(&model.Supplier{}).
		Where("id = ? AND user_id = ?", supplier.ID, tenantID).
		Select("Name").
		Updates(supplier)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

func (r *gormSupplierRepository) Delete(ctx context.Context, tenantID, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).Where("user_id = ?", tenantID).Delete(&model.Supplier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
