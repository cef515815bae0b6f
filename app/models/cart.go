package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID               uint            `gorm:"primaryKey;autoIncrement"`
	CustomerID       *uint           `gorm:"index"`
	Customer         *Customer       `gorm:"foreignKey:CustomerID"`
	Token            string          `gorm:"size:36;uniqueIndex;not null"`
	Products         []CartProduct   `gorm:"foreignKey:CartID"`
	TotalProducts    int             `gorm:"not null;default:0"`
	FinalPrice       decimal.Decimal `gorm:"type:decimal(9,2);not null;default:0"`
	InOrder          bool            `gorm:"not null;default:false;index"`
	ForAnonymousUser bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
