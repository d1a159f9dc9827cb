package model

import (
	"time"
)

// Account represents the database model for accounts
type Account struct {
	ID              uint64 `gorm:"primaryKey"`
	Email           string `gorm:"uniqueIndex;not null;size:255"`
	Entitlement     string `gorm:"not null;size:20;default:FREE"`
	UsageCount      uint   `gorm:"not null;default:0"`
	SubscriptionEnd *time.Time
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
