package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductKindValid(t *testing.T) {
	assert.True(t, KindNotebook.Valid())
	assert.True(t, KindSmartphone.Valid())
	assert.False(t, ProductKind("washingmachine").Valid())
	assert.False(t, ProductKind("").Valid())
}

func TestProductURLs(t *testing.T) {
	n := Notebook{ProductFields: ProductFields{Slug: "thinkpad-x1"}}
	assert.Equal(t, "/products/notebook/thinkpad-x1", n.URL())

	s := Smartphone{ProductFields: ProductFields{Slug: "galaxy-s21"}}
	assert.Equal(t, "/products/smartphone/galaxy-s21", s.URL())

	c := Category{Slug: "notebooks"}
	assert.Equal(t, "/categories/notebooks", c.URL())
}

func TestCartProductRecalculate(t *testing.T) {
	cp := CartProduct{
		Qty:   3,
		Price: decimal.RequireFromString("150.00"),
	}
	cp.Recalculate()
	assert.True(t, cp.FinalPrice.Equal(decimal.RequireFromString("450.00")), "got %s", cp.FinalPrice)

	cp.Qty = 5
	cp.Recalculate()
	assert.True(t, cp.FinalPrice.Equal(decimal.RequireFromString("750.00")), "got %s", cp.FinalPrice)
}
