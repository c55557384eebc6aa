package model

import (
	"time"
)

// Feedback represents a stored product rating
type Feedback struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	UserID    string    `gorm:"size:128;index"`
	UserEmail string    `gorm:"size:320"`
	ClientIP  string    `gorm:"size:64"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}
