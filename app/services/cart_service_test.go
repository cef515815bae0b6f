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

func newCartService(db *gorm.DB) *CartService {
	registry := repositories.NewRegistry(
		repositories.NewNotebookRepository(db),
		repositories.NewSmartphoneRepository(db),
	)
	return NewCartService(db, repositories.NewCartRepository(db), repositories.NewCartProductRepository(db), registry)
}

func newTestCart(t *testing.T, db *gorm.DB, token string) *models.Cart {
	t.Helper()
	cart, err := repositories.NewCartRepository(db).GetOrCreateByToken(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, cart.ForAnonymousUser)
	return cart
}

func TestAddProductPricesLine(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "150.00")

	svc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")

	updated, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 3)
	require.NoError(t, err)
	require.Len(t, updated.Products, 1)

	line := updated.Products[0]
	assert.Equal(t, 3, line.Qty)
	assert.True(t, line.FinalPrice.Equal(mustDecimal("450.00")), "got %s", line.FinalPrice)
	assert.True(t, updated.FinalPrice.Equal(mustDecimal("450.00")), "got %s", updated.FinalPrice)
	assert.Equal(t, 1, updated.TotalProducts)
}

func TestUpdateQuantityReprices(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "150.00")

	svc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")

	updated, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 3)
	require.NoError(t, err)

	updated, err = svc.UpdateQuantity(context.Background(), cart.ID, updated.Products[0].ID, 5)
	require.NoError(t, err)
	require.Len(t, updated.Products, 1)
	assert.True(t, updated.Products[0].FinalPrice.Equal(mustDecimal("750.00")), "got %s", updated.Products[0].FinalPrice)
	assert.True(t, updated.FinalPrice.Equal(mustDecimal("750.00")), "got %s", updated.FinalPrice)
}

func TestAddProductMergesExistingLine(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "100.00")

	svc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")

	_, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 2)
	require.NoError(t, err)
	updated, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 3)
	require.NoError(t, err)

	require.Len(t, updated.Products, 1)
	assert.Equal(t, 5, updated.Products[0].Qty)
	assert.True(t, updated.FinalPrice.Equal(mustDecimal("500.00")), "got %s", updated.FinalPrice)
}

func TestCartTotalsAcrossKinds(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	smartphones := seedCategory(t, db, "Смартфоны", "smartphones")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "100.00")
	sp := seedSmartphone(t, db, smartphones, "galaxy", "50.00")

	svc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")

	_, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 1)
	require.NoError(t, err)
	updated, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindSmartphone, sp.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.TotalProducts)
	assert.True(t, updated.FinalPrice.Equal(mustDecimal("200.00")), "got %s", updated.FinalPrice)

	updated, err = svc.RemoveProduct(context.Background(), cart.ID, updated.Products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalProducts)
	assert.True(t, updated.FinalPrice.Equal(mustDecimal("100.00")), "got %s", updated.FinalPrice)
}

func TestAddProductRejectsInvalidQuantity(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "100.00")

	svc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")

	_, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	updated, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 1)
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(context.Background(), cart.ID, updated.Products[0].ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddProductDanglingReference(t *testing.T) {
	db := setupDB(t)
	seedCategory(t, db, "Ноутбуки", "notebooks")

	svc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")

	_, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, 9999, 1)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	_, err = svc.AddProduct(context.Background(), cart.ID, nil, "washingmachine", 1, 1)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestCartInOrderIsImmutable(t *testing.T) {
	db := setupDB(t)
	notebooks := seedCategory(t, db, "Ноутбуки", "notebooks")
	nb := seedNotebook(t, db, notebooks, "thinkpad", "100.00")

	svc := newCartService(db)
	cart := newTestCart(t, db, "tok-1")

	updated, err := svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 1)
	require.NoError(t, err)
	lineID := updated.Products[0].ID

	cartRepo := repositories.NewCartRepository(db)
	require.NoError(t, cartRepo.MarkInOrder(context.Background(), db, cart.ID))

	_, err = svc.AddProduct(context.Background(), cart.ID, nil, models.KindNotebook, nb.ID, 1)
	assert.ErrorIs(t, err, ErrCartInOrder)

	_, err = svc.UpdateQuantity(context.Background(), cart.ID, lineID, 2)
	assert.ErrorIs(t, err, ErrCartInOrder)

	_, err = svc.RemoveProduct(context.Background(), cart.ID, lineID)
	assert.ErrorIs(t, err, ErrCartInOrder)
}

func TestSessionCartReuse(t *testing.T) {
	db := setupDB(t)
	svc := newCartService(db)

	first, err := svc.GetSessionCart(context.Background(), "tok-1")
	require.NoError(t, err)
	second, err := svc.GetSessionCart(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := svc.GetSessionCart(context.Background(), "tok-2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}
