package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"gorm.io/gorm"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrCartInOrder     = errors.New("cart is already attached to an order")
	ErrLineNotFound    = errors.New("cart line not found")
)

// CartService owns cart mutations. Every line's FinalPrice is recomputed
// from the referenced product on each write, and the cart's stored totals
// are recomputed in the same transaction, so neither is ever stale.
type CartService struct {
	db              *gorm.DB
	cartRepo        repositories.CartRepositoryImpl
	cartProductRepo repositories.CartProductRepositoryImpl
	registry        *repositories.Registry
}

func NewCartService(db *gorm.DB, cartRepo repositories.CartRepositoryImpl, cartProductRepo repositories.CartProductRepositoryImpl, registry *repositories.Registry) *CartService {
	return &CartService{
		db:              db,
		cartRepo:        cartRepo,
		cartProductRepo: cartProductRepo,
		registry:        registry,
	}
}

// GetSessionCart returns the open cart bound to a session token, creating
// an anonymous cart for new visitors.
func (s *CartService) GetSessionCart(ctx context.Context, token string) (*models.Cart, error) {
	return s.cartRepo.GetOrCreateByToken(ctx, token)
}

func (s *CartService) GetCustomerCart(ctx context.Context, customerID uint, token string) (*models.Cart, error) {
	return s.cartRepo.GetOrCreateByCustomer(ctx, customerID, token)
}

func (s *CartService) GetCartWithProducts(ctx context.Context, cartID uint) (*models.Cart, error) {
	return s.cartRepo.GetWithProducts(ctx, cartID)
}

// AddProduct puts qty units of a (kind, id) referenced product into the
// cart, merging with an existing line for the same product.
func (s *CartService) AddProduct(ctx context.Context, cartID uint, customerID *uint, kind models.ProductKind, productID uint, qty int) (*models.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart.InOrder {
		return nil, ErrCartInOrder
	}

	product, err := s.registry.Resolve(ctx, kind, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s/%d: %w", kind, productID, err)
	}

	existing, err := s.cartProductRepo.GetByCartAndRef(ctx, cartID, kind, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing cart line: %w", err)
	}

	var line *models.CartProduct
	if existing != nil {
		line = existing
		line.Qty += qty
	} else {
		line = &models.CartProduct{
			CartID:     cartID,
			CustomerID: customerID,
			Kind:       kind,
			ProductID:  productID,
			Qty:        qty,
		}
	}
	line.Price = product.GetPrice()
	line.Recalculate()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if existing != nil {
			if err := s.cartProductRepo.Update(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to update cart line: %w", err)
			}
		} else {
			if err := s.cartProductRepo.Create(ctx, tx, line); err != nil {
				return fmt.Errorf("failed to create cart line: %w", err)
			}
		}
		return s.cartRepo.UpdateSummary(ctx, tx, cartID)
	})
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetWithProducts(ctx, cartID)
}

// UpdateQuantity sets a line's quantity and reprices it against the
// referenced product's current unit price.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, cartProductID uint, qty int) (*models.Cart, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart.InOrder {
		return nil, ErrCartInOrder
	}

	line, err := s.cartProductRepo.GetByID(ctx, cartProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, fmt.Errorf("failed to get cart line: %w", err)
	}
	if line.CartID != cartID {
		return nil, ErrLineNotFound
	}

	product, err := s.registry.Resolve(ctx, line.Kind, line.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product %s/%d: %w", line.Kind, line.ProductID, err)
	}

	line.Qty = qty
	line.Price = product.GetPrice()
	line.Recalculate()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cartProductRepo.Update(ctx, tx, line); err != nil {
			return fmt.Errorf("failed to update cart line: %w", err)
		}
		return s.cartRepo.UpdateSummary(ctx, tx, cartID)
	})
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetWithProducts(ctx, cartID)
}

func (s *CartService) RemoveProduct(ctx context.Context, cartID, cartProductID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart.InOrder {
		return nil, ErrCartInOrder
	}

	line, err := s.cartProductRepo.GetByID(ctx, cartProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLineNotFound
		}
		return nil, fmt.Errorf("failed to get cart line: %w", err)
	}
	if line.CartID != cartID {
		return nil, ErrLineNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cartProductRepo.Delete(ctx, tx, line.ID); err != nil {
			return fmt.Errorf("failed to delete cart line: %w", err)
		}
		return s.cartRepo.UpdateSummary(ctx, tx, cartID)
	})
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetWithProducts(ctx, cartID)
}
