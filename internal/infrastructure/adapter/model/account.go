package model

import (
	"time"
)

// Account represents the database model for the users collection
type Account struct {
	ID                         string     `gorm:"primaryKey;size:128"`
	Credits                    int64      `gorm:"not null;default:0;check:chk_users_credits_non_negative,credits >= 0"`
	Email                      string     `gorm:"size:320"`
	ReferralCode               *string    `gorm:"size:6;uniqueIndex:idx_users_referral_code"`
	ReferredBy                 *string    `gorm:"size:128;index"`
	ReferredByCode             *string    `gorm:"size:6"`
	ReferralCount              int64      `gorm:"not null;default:0"`
	CreditsEarnedFromReferrals int64      `gorm:"not null;default:0"`
	CreatedAt                  time.Time  `gorm:"not null"`
	UpdatedAt                  time.Time  `gorm:"not null"`
	LastUsed                   *time.Time `gorm:"null"`
	LastPurchase               *time.Time `gorm:"null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "users"
}
