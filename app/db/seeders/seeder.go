package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/tvolodin/go-technoshop/app/db/fakers"
	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"gorm.io/gorm"
)

const productsPerCategory = 7

// DBSeed fills an empty database with the two stock categories, a handful
// of products in each and one demo customer.
func DBSeed(db *gorm.DB) error {
	ctx := context.Background()

	notebooks := models.Category{Name: "Ноутбуки", Slug: "notebooks"}
	smartphones := models.Category{Name: "Смартфоны", Slug: "smartphones"}

	if err := db.FirstOrCreate(&notebooks, models.Category{Slug: notebooks.Slug}).Error; err != nil {
		return fmt.Errorf("failed to seed category %q: %w", notebooks.Name, err)
	}
	if err := db.FirstOrCreate(&smartphones, models.Category{Slug: smartphones.Slug}).Error; err != nil {
		return fmt.Errorf("failed to seed category %q: %w", smartphones.Name, err)
	}

	for i := 0; i < productsPerCategory; i++ {
		if err := db.Create(fakers.NotebookFaker(&notebooks)).Error; err != nil {
			return fmt.Errorf("failed to seed notebook: %w", err)
		}
		if err := db.Create(fakers.SmartphoneFaker(&smartphones)).Error; err != nil {
			return fmt.Errorf("failed to seed smartphone: %w", err)
		}
	}

	userRepo := repositories.NewUserRepository(db)
	user := fakers.UserFaker()
	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	customerRepo := repositories.NewCustomerRepository(db)
	if err := customerRepo.Create(ctx, fakers.CustomerFaker(user)); err != nil {
		return fmt.Errorf("failed to seed customer: %w", err)
	}

	log.Printf("Seeded %d notebooks, %d smartphones and 1 customer", productsPerCategory, productsPerCategory)
	return nil
}
