package repositories

import (
	"context"

	"github.com/tvolodin/go-technoshop/app/models"
	"gorm.io/gorm"
)

type CartProductRepositoryImpl interface {
	GetByID(ctx context.Context, id uint) (*models.CartProduct, error)
	GetByCartAndRef(ctx context.Context, cartID uint, kind models.ProductKind, productID uint) (*models.CartProduct, error)
	Create(ctx context.Context, db *gorm.DB, cp *models.CartProduct) error
	Update(ctx context.Context, db *gorm.DB, cp *models.CartProduct) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}

type cartProductRepository struct {
	db *gorm.DB
}

func NewCartProductRepository(db *gorm.DB) CartProductRepositoryImpl {
	return &cartProductRepository{db}
}

func (r *cartProductRepository) GetByID(ctx context.Context, id uint) (*models.CartProduct, error) {
	var cp models.CartProduct
	err := r.db.WithContext(ctx).First(&cp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *cartProductRepository) GetByCartAndRef(ctx context.Context, cartID uint, kind models.ProductKind, productID uint) (*models.CartProduct, error) {
	var cp models.CartProduct
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND kind = ? AND product_id = ?", cartID, kind, productID).
		First(&cp).Error
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *cartProductRepository) Create(ctx context.Context, db *gorm.DB, cp *models.CartProduct) error {
	return db.WithContext(ctx).Create(cp).Error
}

func (r *cartProductRepository) Update(ctx context.Context, db *gorm.DB, cp *models.CartProduct) error {
	return db.WithContext(ctx).Save(cp).Error
}

func (r *cartProductRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&models.CartProduct{}, id).Error
}
