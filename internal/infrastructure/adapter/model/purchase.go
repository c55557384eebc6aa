package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase represents a processed checkout session
type Purchase struct {
	SessionID   string          `gorm:"primaryKey;size:255"`
	EventID     string          `gorm:"size:255;index"`
	UserID      string          `gorm:"size:128;not null;index"`
	Credits     int64           `gorm:"not null;default:0"`
	AmountTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency    string          `gorm:"size:3"`
	Status      string          `gorm:"size:16;not null;index"`
	Source      string          `gorm:"size:16;not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "processed_purchases"
}
