package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCartAlreadyOrdered = errors.New("cart already belongs to an order")
	ErrInvalidTransition  = errors.New("invalid order status transition")
)

// CheckoutForm carries the buyer details collected at order placement.
type CheckoutForm struct {
	FirstName  string `validate:"required"`
	LastName   string `validate:"required"`
	Phone      string `validate:"required"`
	Address    string
	BuyingType string `validate:"required,oneof=self delivery"`
	Comment    string
	OrderDate  time.Time
}

type CheckoutService struct {
	db           *gorm.DB
	validate     *validator.Validate
	cartRepo     repositories.CartRepositoryImpl
	orderRepo    repositories.OrderRepositoryImpl
	customerRepo repositories.CustomerRepositoryImpl
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	customerRepo repositories.CustomerRepositoryImpl,
) *CheckoutService {
	return &CheckoutService{
		db:           db,
		validate:     validator.New(),
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// PlaceOrder turns a cart into a new order and freezes the cart. Order
// creation and the cart's in_order flag flip happen in one transaction.
func (s *CheckoutService) PlaceOrder(ctx context.Context, customerID, cartID uint, form CheckoutForm) (*models.Order, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("invalid checkout form: %w", err)
	}

	cart, err := s.cartRepo.GetWithProducts(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart.InOrder {
		return nil, ErrCartAlreadyOrdered
	}
	if len(cart.Products) == 0 {
		return nil, ErrEmptyCart
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	orderDate := form.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &models.Order{
		CustomerID: customer.ID,
		CartID:     &cart.ID,
		OrderCode:  uuid.New().String(),
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Phone:      form.Phone,
		Address:    form.Address,
		Status:     models.OrderStatusNew,
		BuyingType: form.BuyingType,
		Comment:    form.Comment,
		OrderDate:  orderDate,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := s.cartRepo.MarkInOrder(ctx, tx, cart.ID); err != nil {
			return fmt.Errorf("failed to mark cart as ordered: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateStatus moves an order to a later stage. Backward moves and unknown
// stages are rejected; forward-only progression is enforced here.
func (s *CheckoutService) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}

	if !models.CanTransition(order.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

func (s *CheckoutService) OrdersByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomer(ctx, customerID)
}
