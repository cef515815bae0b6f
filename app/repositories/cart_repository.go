package repositories

import (
	"context"
	"errors"

	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetByID(ctx context.Context, id uint) (*models.Cart, error)
	GetByToken(ctx context.Context, token string) (*models.Cart, error)
	GetOrCreateByToken(ctx context.Context, token string) (*models.Cart, error)
	GetOrCreateByCustomer(ctx context.Context, customerID uint, token string) (*models.Cart, error)
	GetWithProducts(ctx context.Context, id uint) (*models.Cart, error)
	UpdateSummary(ctx context.Context, db *gorm.DB, cartID uint) error
	MarkInOrder(ctx context.Context, db *gorm.DB, cartID uint) error
	GetProductCount(ctx context.Context, cartID uint) (int, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) GetByID(ctx context.Context, id uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).First(&cart, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByToken(ctx context.Context, token string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).First(&cart, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByToken returns the open cart carried by a session token,
// creating an anonymous one when the token is new. Carts already attached
// to an order are not reused; the caller gets a fresh cart instead.
func (r *cartRepository) GetOrCreateByToken(ctx context.Context, token string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Where("token = ? AND in_order = ?", token, false).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{
		Token:            token,
		ForAnonymousUser: true,
		FinalPrice:       decimal.Zero,
	}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateByCustomer returns the customer's open cart. A cart started
// anonymously under the session token is claimed for the customer first,
// so lines added before logging in survive checkout.
func (r *cartRepository) GetOrCreateByCustomer(ctx context.Context, customerID uint, token string) (*models.Cart, error) {
	var byToken models.Cart
	err := r.db.WithContext(ctx).
		Where("token = ? AND in_order = ?", token, false).
		First(&byToken).Error
	if err == nil {
		if byToken.CustomerID != nil && *byToken.CustomerID == customerID {
			return &byToken, nil
		}
		if byToken.CustomerID == nil {
			if err := r.db.WithContext(ctx).
				Model(&byToken).
				Updates(map[string]interface{}{
					"customer_id":        customerID,
					"for_anonymous_user": false,
				}).Error; err != nil {
				return nil, err
			}
			byToken.CustomerID = &customerID
			byToken.ForAnonymousUser = false
			return &byToken, nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var byCustomer models.Cart
	err = r.db.WithContext(ctx).
		Where("customer_id = ? AND in_order = ?", customerID, false).
		First(&byCustomer).Error
	if err == nil {
		return &byCustomer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart := models.Cart{
		CustomerID: &customerID,
		Token:      token,
		FinalPrice: decimal.Zero,
	}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetWithProducts(ctx context.Context, id uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Products").
		First(&cart, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// UpdateSummary recomputes the cart's stored aggregates from its lines.
// Runs on the caller's db handle so it joins the surrounding transaction.
func (r *cartRepository) UpdateSummary(ctx context.Context, db *gorm.DB, cartID uint) error {
	var products []models.CartProduct
	if err := db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Find(&products).Error; err != nil {
		return err
	}

	finalPrice := decimal.Zero
	for _, cp := range products {
		finalPrice = finalPrice.Add(cp.FinalPrice)
	}

	return db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"total_products": len(products),
			"final_price":    finalPrice,
		}).Error
}

func (r *cartRepository) MarkInOrder(ctx context.Context, db *gorm.DB, cartID uint) error {
	return db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("in_order", true).Error
}

func (r *cartRepository) GetProductCount(ctx context.Context, cartID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CartProduct{}).
		Where("cart_id = ?", cartID).
		Count(&count).Error
	return int(count), err
}
