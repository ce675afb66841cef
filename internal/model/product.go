package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents the product master data. SKU is unique within a tenant,
// not globally, so two accounts can both carry "SKU-1".
type Product struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	UserID        uint            `json:"user_id" gorm:"not null;uniqueIndex:idx_products_user_sku"`
	Name          string          `json:"name" gorm:"type:varchar(255);not null"`
	SKU           string          `json:"sku" gorm:"type:varchar(100);not null;uniqueIndex:idx_products_user_sku"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null;default:0"`
	Description   string          `json:"description" gorm:"type:text"`
	CategoryID    *uint           `json:"category_id"`
	SupplierID    *uint           `json:"supplier_id"`
	Category      *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Supplier      *Supplier       `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"deleted_at,omitempty" gorm:"index"`
}
