package models

import (
	"time"
)

type Customer struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	UserID    uint    `gorm:"index;not null"`
	User      User    `gorm:"foreignKey:UserID"`
	Phone     string  `gorm:"size:20"`
	Address   string  `gorm:"size:255"`
	Orders    []Order `gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
