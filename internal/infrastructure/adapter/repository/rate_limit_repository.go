package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/model"
)

var _ persistence.RateLimitRepository = (*RateLimitRepository)(nil)

// RateLimitRepository implements RateLimitRepository interface using GORM
type RateLimitRepository struct {
	db *gorm.DB
}

// NewRateLimitRepository creates a new RateLimitRepository instance
func NewRateLimitRepository(db *gorm.DB) *RateLimitRepository {
	return &RateLimitRepository{db: db}
}

// PurgeBefore drops hits of key older than before
func (r *RateLimitRepository) PurgeBefore(ctx context.Context, key string, before time.Time) error {
	err := conn(ctx, r.db).Where("bucket_key = ? AND hit_at < ?", key, before.UTC()).Delete(&model.RateLimitHit{}).Error
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// CountSince counts hits of key at or after since
func (r *RateLimitRepository) CountSince(ctx context.Context, key string, since time.Time) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.RateLimitHit{}).
		Where("bucket_key = ? AND hit_at >= ?", key, since.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return count, nil
}

// OldestSince returns the oldest hit of key at or after since
func (r *RateLimitRepository) OldestSince(ctx context.Context, key string, since time.Time) (time.Time, error) {
	var m model.RateLimitHit
	err := conn(ctx, r.db).
		Where("bucket_key = ? AND hit_at >= ?", key, since.UTC()).
		Order("hit_at ASC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, errs.ErrNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return m.HitAt, nil
}

// Record stores one hit
func (r *RateLimitRepository) Record(ctx context.Context, key string, at time.Time) error {
	if err := conn(ctx, r.db).Create(&model.RateLimitHit{Key: key, HitAt: at.UTC()}).Error; err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}
