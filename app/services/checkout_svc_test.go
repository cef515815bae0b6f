package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvolodin/go-technoshop/app/models"
	"github.com/tvolodin/go-technoshop/app/repositories"
	"gorm.io/gorm"
)

func newCheckoutService(db *gorm.DB) *CheckoutService {
	return NewCheckoutService(
		db,
		repositories.NewCartRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewCustomerRepository(db),
	)
}

func seedCustomer(t *testing.T, db *gorm.DB) *models.Customer {
	t.Helper()
	ctx := context.Background()

	user := &models.User{FirstName: "Иван", LastName: "Петров", Email: "ivan@example.com", Password: "secret"}
	require.NoError(t, repositories.NewUserRepository(db).Create(ctx, user))

	customer := &models.Customer{UserID: user.ID, Phone: "+7 900 000-00-00", Address: "Москва"}
	require.NoError(t, repositories.NewCustomerRepository(db).Create(ctx, customer))
	return customer
}

func validForm() CheckoutForm {
	return CheckoutForm{
		FirstName:  "Иван",
		LastName:   "Петров",
		Phone:      "+7 900 000-00-00",
		Address:    "Москва, ул. Ленина, 1",
		BuyingType: models.BuyingTypeDelivery,
		Comment:    "Позвонить за час",
	}
}

func TestPlaceOrderFreezesCart(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "150.00")
	customer := seedCustomer(t, db)

	cartSvc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")
	_, err := cartSvc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 2)
	require.NoError(t, err)

	svc := newCheckoutService(db)
	order, err := svc.PlaceOrder(context.Background(), customer.ID, cart.ID, validForm())
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusNew, order.Status)
	assert.Equal(t, models.BuyingTypeDelivery, order.BuyingType)
	assert.NotEmpty(t, order.OrderCode)
	assert.False(t, order.OrderDate.IsZero())
	require.NotNil(t, order.CartID)
	assert.Equal(t, cart.ID, *order.CartID)

	frozen, err := repositories.NewCartRepository(db).GetByID(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.True(t, frozen.InOrder)

	// The frozen cart can no longer be ordered again.
	_, err = svc.PlaceOrder(context.Background(), customer.ID, cart.ID, validForm())
	assert.ErrorIs(t, err, ErrCartAlreadyOrdered)
}

// A cart filled before logging in must be claimed by the customer at
// checkout instead of colliding with a fresh cart under the same token.
func TestPlaceOrderClaimsAnonymousCart(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "150.00")
	customer := seedCustomer(t, db)

	cartSvc := newCartService(db)
	anon := newTestCart(t, db, "tok-1")
	_, err := cartSvc.AddProduct(context.Background(), anon.ID, nil, models.KindNotebook, nb.ID, 2)
	require.NoError(t, err)

	claimed, err := cartSvc.GetCustomerCart(context.Background(), customer.ID, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, anon.ID, claimed.ID)
	require.NotNil(t, claimed.CustomerID)
	assert.Equal(t, customer.ID, *claimed.CustomerID)
	assert.False(t, claimed.ForAnonymousUser)

	// Claiming is idempotent for the same customer and token.
	again, err := cartSvc.GetCustomerCart(context.Background(), customer.ID, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, claimed.ID, again.ID)

	svc := newCheckoutService(db)
	order, err := svc.PlaceOrder(context.Background(), customer.ID, claimed.ID, validForm())
	require.NoError(t, err)
	require.NotNil(t, order.CartID)
	assert.Equal(t, anon.ID, *order.CartID)

	frozen, err := repositories.NewCartRepository(db).GetWithProducts(context.Background(), claimed.ID)
	require.NoError(t, err)
	assert.True(t, frozen.InOrder)
	require.Len(t, frozen.Products, 1)
	assert.Equal(t, 2, frozen.Products[0].Qty)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	db := setupDB(t)
	customer := seedCustomer(t, db)
	cart := newTestCart(t, db, "tok-1")

	svc := newCheckoutService(db)
	_, err := svc.PlaceOrder(context.Background(), customer.ID, cart.ID, validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderValidatesForm(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "150.00")
	customer := seedCustomer(t, db)

	cartSvc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")
	_, err := cartSvc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 1)
	require.NoError(t, err)

	svc := newCheckoutService(db)

	form := validForm()
	form.FirstName = ""
	_, err = svc.PlaceOrder(context.Background(), customer.ID, cart.ID, form)
	assert.Error(t, err)

	form = validForm()
	form.BuyingType = "teleport"
	_, err = svc.PlaceOrder(context.Background(), customer.ID, cart.ID, form)
	assert.Error(t, err)
}

func TestUpdateStatusForwardOnly(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "150.00")
	customer := seedCustomer(t, db)

	cartSvc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")
	_, err := cartSvc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 1)
	require.NoError(t, err)

	svc := newCheckoutService(db)
	order, err := svc.PlaceOrder(context.Background(), customer.ID, cart.ID, validForm())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusInProgress))
	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusCompleted))

	err = svc.UpdateStatus(context.Background(), order.ID, models.OrderStatusNew)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.UpdateStatus(context.Background(), order.ID, "lost")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrdersByCustomer(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "150.00")
	customer := seedCustomer(t, db)

	cartSvc := newCartService(db)
	svc := newCheckoutService(db)

	for _, token := range []string{"tok-1", "tok-2"} {
		cart := newTestCart(t, db, token)
		_, err := cartSvc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 1)
		require.NoError(t, err)
		_, err = svc.PlaceOrder(context.Background(), customer.ID, cart.ID, validForm())
		require.NoError(t, err)
	}

	orders, err := svc.OrdersByCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
