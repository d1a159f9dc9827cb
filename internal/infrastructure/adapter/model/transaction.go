package model

import (
	"time"
)

// Transaction represents the database model for payment transactions.
// The primary key is the checkout request identifier issued by the
// payment gateway, so a replayed callback can never create a second row.
type Transaction struct {
	Key         string    `gorm:"column:checkout_request_id;primaryKey;size:255"`
	AccountID   uint64    `gorm:"not null;index"`
	PhoneNumber string    `gorm:"not null;size:20"`
	Amount      int64     `gorm:"not null"` // Amount in KES
	Status      string    `gorm:"not null;size:20;index:idx_transactions_status_created,priority:1"`
	CreatedAt   time.Time `gorm:"not null;index:idx_transactions_status_created,priority:2"`
	CompletedAt *time.Time

	// Define relationships
	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
