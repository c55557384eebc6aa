package model

import (
	"time"
)

// Referral represents the database model for the referrals collection.
// A referred user can appear in at most one record.
type Referral struct {
	ID             string     `gorm:"primaryKey;size:36"`
	ReferrerID     string     `gorm:"size:128;not null;index"`
	ReferredUserID string     `gorm:"size:128;not null;uniqueIndex:idx_referrals_referred_user"`
	ReferralCode   string     `gorm:"size:6;not null"`
	Status         string     `gorm:"size:16;not null;default:pending"`
	CreditsAwarded bool       `gorm:"not null;default:false"`
	CreatedAt      time.Time  `gorm:"not null"`
	CompletedAt    *time.Time `gorm:"null"`
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}
