package repository

import (
	"context"
	"errors"
	"time"

	"bizflow/internal/model"
	"bizflow/prometheus"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	List(ctx context.Context, tenantID uint) ([]model.Customer, error)
	GetByID(ctx context.Context, tenantID, id uint) (*model.Customer, error)
	Create(ctx context.Context, tenantID uint, customer *model.Customer) error
	Update(ctx context.Context, tenantID uint, customer *model.Customer) error
	Delete(ctx context.Context, tenantID, id uint) error
}

type gormCustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &gormCustomerRepository{db: db}
}

func (r *gormCustomerRepository) List(ctx context.Context, tenantID uint) ([]model.Customer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var customers []model.Customer
	if err := r.db.WithContext(ctx).Where("user_id = ?", tenantID).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *gormCustomerRepository) GetByID(ctx context.Context, tenantID, id uint) (*model.Customer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var customer model.Customer
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, tenantID).First(&customer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, result.Error
	}
	return &customer, nil
}

func (r *gormCustomerRepository) Create(ctx context.Context, tenantID uint, customer *model.Customer) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	customer.UserID = tenantID
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *gormCustomerRepository) Update(ctx context.Context, tenantID uint, customer *model.Customer) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ? AND user_id = ?", customer.ID, tenantID).
		Select("Name", "Email", "Phone", "Status").
		Updates(customer)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *gormCustomerRepository) Delete(ctx context.Context, tenantID, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).Where("user_id = ?", tenantID).Delete(&model.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
