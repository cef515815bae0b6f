package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartProduct is one cart line. The referenced product lives in one of
// several variant tables, so the reference is a (Kind, ProductID) pair
// instead of a plain foreign key.
type CartProduct struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	CartID     uint            `gorm:"not null;uniqueIndex:idx_cart_kind_product"`
	CustomerID *uint           `gorm:"index"`
	Kind       ProductKind     `gorm:"size:32;not null;uniqueIndex:idx_cart_kind_product"`
	ProductID  uint            `gorm:"not null;uniqueIndex:idx_cart_kind_product"`
	Qty        int             `gorm:"not null;default:1;check:qty > 0"`
	Price      decimal.Decimal `gorm:"type:decimal(9,2);not null"`
	FinalPrice decimal.Decimal `gorm:"type:decimal(9,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Recalculate derives the line total from the unit price snapshot. Must be
// called before every persist so FinalPrice never drifts from qty * price.
func (cp *CartProduct) Recalculate() {
	cp.FinalPrice = cp.Price.Mul(decimal.NewFromInt(int64(cp.Qty)))
}
