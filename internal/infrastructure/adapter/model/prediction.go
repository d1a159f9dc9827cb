package model

import (
	"time"
)

// Prediction represents the database model for prediction history
type Prediction struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID uint64    `gorm:"not null;index"`
	HomeTeam  string    `gorm:"not null;size:100"`
	AwayTeam  string    `gorm:"not null;size:100"`
	HomeGoals int       `gorm:"not null"`
	AwayGoals int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Define relationships
	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Prediction
func (Prediction) TableName() string {
	return "predictions"
}
