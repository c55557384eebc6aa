package model

import (
	"time"
)

// RateLimitHit is one admitted request of the shared sliding-window limiter
type RateLimitHit struct {
	ID    uint64    `gorm:"primaryKey;autoIncrement"`
	Key   string    `gorm:"column:bucket_key;size:255;not null;index:idx_rate_limit_hits_key_at,priority:1"`
	HitAt time.Time `gorm:"not null;index:idx_rate_limit_hits_key_at,priority:2"`
}

// TableName specifies the table name for RateLimitHit
func (RateLimitHit) TableName() string {
	return "rate_limit_hits"
}
