package repository

import (
	"context"
	"errors"
	"time"

	"bizflow/internal/model"
	"bizflow/prometheus"

	"gorm.io/gorm"
)

// ProductRepository is the only access path to product rows. Every method
// takes the acting tenant's ID and applies it as a query filter, so a query
// that skips the tenant cannot be expressed.
type ProductRepository interface {
	List(ctx context.Context, tenantID uint, categoryID *uint) ([]model.Product, error)
	GetByID(ctx context.Context, tenantID, id uint) (*model.Product, error)
	Create(ctx context.Context, tenantID uint, product *model.Product) error
	Update(ctx context.Context, tenantID uint, product *model.Product) error
	Delete(ctx context.Context, tenantID, id uint) error
	ListLowStock(ctx context.Context, tenantID uint, threshold int) ([]model.Product, error)
}

type gormProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) List(ctx context.Context, tenantID uint, categoryID *uint) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Where("user_id = ?", tenantID)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var product model.Product
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Supplier").
		Where("id = ? AND user_id = ?", id, tenantID).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, result.Error
	}
	return &product, nil
}

func (r *gormProductRepository) Create(ctx context.Context, tenantID uint, product *model.Product) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	product.UserID = tenantID

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("user_id = ? AND sku = ?", tenantID, product.SKU).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateSKU
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSKU
		}
		return err
	}
	return nil
}

func (r *gormProductRepository) Update(ctx context.Context, tenantID uint, product *model.Product) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("user_id = ? AND sku = ? AND id <> ?", tenantID, product.SKU, product.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateSKU
	}

	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND user_id = ?", product.ID, tenantID).
		Select("Name", "SKU", "Price", "StockQuantity", "Description", "CategoryID", "SupplierID").
		Updates(product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *gormProductRepository) Delete(ctx context.Context, tenantID, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).
		Where("user_id = ?", tenantID).
		Delete(&model.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *gormProductRepository) ListLowStock(ctx context.Context, tenantID uint, threshold int) ([]model.Product, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND stock_quantity < ?", tenantID, threshold).
		Order("stock_quantity ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
