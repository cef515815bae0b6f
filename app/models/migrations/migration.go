package migrations

import (
	"github.com/tvolodin/go-technoshop/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Category{},
		&models.Notebook{},
		&models.Smartphone{},
		&models.Cart{},
		&models.CartProduct{},
		&models.Order{},
	)
}
