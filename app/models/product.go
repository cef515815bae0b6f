package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductKind discriminates the concrete product tables. Together with a
// numeric ID it forms the generic reference used by CartProduct.
type ProductKind string

const (
	KindNotebook   ProductKind = "notebook"
	KindSmartphone ProductKind = "smartphone"
)

// AllKinds lists every registered variant in display order.
var AllKinds = []ProductKind{KindNotebook, KindSmartphone}

func (k ProductKind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k ProductKind) String() string {
	return string(k)
}

// ProductFields is the attribute shape shared by every product variant.
// Each variant embeds it, so every variant table carries its own copy of
// these columns and its own identity space.
type ProductFields struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	CategoryID  uint            `gorm:"index;not null"`
	Title       string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex"`
	Image       string          `gorm:"size:255"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(9,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p ProductFields) GetID() uint               { return p.ID }
func (p ProductFields) GetCategoryID() uint       { return p.CategoryID }
func (p ProductFields) GetTitle() string          { return p.Title }
func (p ProductFields) GetSlug() string           { return p.Slug }
func (p ProductFields) GetPrice() decimal.Decimal { return p.Price }

// ProductInfo is the capability every variant exposes to the aggregator,
// the cart and the renderer, regardless of which table it lives in.
type ProductInfo interface {
	GetID() uint
	GetCategoryID() uint
	GetTitle() string
	GetSlug() string
	GetPrice() decimal.Decimal
	Kind() ProductKind
	URL() string
}

func productURL(kind ProductKind, slug string) string {
	return "/products/" + string(kind) + "/" + slug
}
