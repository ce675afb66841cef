package database

import (
	"fmt"

	"bizflow/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoData creates two demo tenants with sample inventory. It is a no-op
// when any user already exists, so repeated startups never duplicate data.
func SeedDemoData() error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedTenant(tx, string(hash), "admin", tenantSeed{
			category:     model.Category{Name: "Electronics", Description: "Gadgets"},
			supplier:     model.Supplier{Name: "Tech Supplier Inc"},
			customerName: "Tech Buyer",
			customerMail: "buyer@tech.com",
			customerTag:  "VIP",
			products: []productSeed{
				{"Wireless Mouse", "TECH-001", "25.00", 100},
				{"Gaming Laptop", "TECH-002", "1200.00", 10},
			},
		}); err != nil {
			return err
		}

		return seedTenant(tx, string(hash), "cafe_owner", tenantSeed{
			category:     model.Category{Name: "Beverages", Description: "Hot and Cold Drinks"},
			supplier:     model.Supplier{Name: "Coffee Beans Co"},
			customerName: "Daily Regular",
			customerMail: "coffee@lover.com",
			customerTag:  "Active",
			products: []productSeed{
				{"Espresso Shot", "CAF-001", "3.50", 500},
				{"Croissant", "CAF-FOOD-001", "4.00", 50},
			},
		})
	})
}

type productSeed struct {
	name  string
	sku   string
	price string
	stock int
}

type tenantSeed struct {
	category     model.Category
	supplier     model.Supplier
	customerName string
	customerMail string
	customerTag  string
	products     []productSeed
}

func seedTenant(tx *gorm.DB, passwordHash, username string, seed tenantSeed) error {
	user := model.User{Username: username, PasswordHash: passwordHash}
	if err := tx.Create(&user).Error; err != nil {
		return err
	}

	seed.category.UserID = user.ID
	if err := tx.Create(&seed.category).Error; err != nil {
		return err
	}

	seed.supplier.UserID = user.ID
	if err := tx.Create(&seed.supplier).Error; err != nil {
		return err
	}

	for _, p := range seed.products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return err
		}
		product := model.Product{
			UserID:        user.ID,
			Name:          p.name,
			SKU:           p.sku,
			Price:         price,
			StockQuantity: p.stock,
			CategoryID:    &seed.category.ID,
			SupplierID:    &seed.supplier.ID,
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
	}

	customer := model.Customer{
		UserID: user.ID,
		Name:   seed.customerName,
		Email:  seed.customerMail,
		Status: seed.customerTag,
	}
	return tx.Create(&customer).Error
}
