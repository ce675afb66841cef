package repository

import (
	"context"
	"errors"
	"time"

	"bizflow/internal/model"
	"bizflow/prometheus"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context, tenantID uint) ([]model.Category, error)
	GetByID(ctx context.Context, tenantID, id uint) (*model.Category, error)
	Create(ctx context.Context, tenantID uint, category *model.Category) error
	Update(ctx context.Context, tenantID uint, category *model.Category) error
	Delete(ctx context.Context, tenantID, id uint) error
}

type gormCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) List(ctx context.Context, tenantID uint) ([]model.Category, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var categories []model.Category
	if err := r.db.WithContext(ctx).Where("user_id = ?", tenantID).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Category, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var category model.Category
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, tenantID).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return &category, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, tenantID uint, category *model.Category) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	category.UserID = tenantID
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *gormCategoryRepository) Update(ctx context.Context, tenantID uint, category *model.Category) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ? AND user_id = ?", category.ID, tenantID).
		Select("Name", "Description").
		Updates(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *gormCategoryRepository) Delete(ctx context.Context, tenantID, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).Where("user_id = ?", tenantID).Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
