package models

import (
	"time"
)

const (
	OrderStatusNew        = "new"
	OrderStatusInProgress = "in_progress"
	OrderStatusReady      = "is_ready"
	OrderStatusCompleted  = "completed"

	BuyingTypeSelf     = "self"
	BuyingTypeDelivery = "delivery"
)

// statusRank fixes the staff-side progression of an order. The stages only
// ever move forward; see CanTransition.
var statusRank = map[string]int{
	OrderStatusNew:        0,
	OrderStatusInProgress: 1,
	OrderStatusReady:      2,
	OrderStatusCompleted:  3,
}

// ValidOrderStatus reports whether s is one of the defined stages.
func ValidOrderStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

func ValidBuyingType(s string) bool {
	return s == BuyingTypeSelf || s == BuyingTypeDelivery
}

// CanTransition reports whether an order may move from one status to
// another. Only forward progression through the defined stages is allowed.
func CanTransition(from, to string) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CustomerID uint      `gorm:"index;not null"`
	Customer   Customer  `gorm:"foreignKey:CustomerID"`
	CartID     *uint     `gorm:"index"`
	Cart       *Cart     `gorm:"foreignKey:CartID"`
	OrderCode  string    `gorm:"size:36;uniqueIndex;not null"`
	FirstName  string    `gorm:"size:255;not null"`
	LastName   string    `gorm:"size:255;not null"`
	Phone      string    `gorm:"size:255;not null"`
	Address    string    `gorm:"size:255"`
	Status     string    `gorm:"size:100;not null;default:'new'"`
	BuyingType string    `gorm:"size:100;not null;default:'self'"`
	Comment    string    `gorm:"type:text"`
	OrderDate  time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
