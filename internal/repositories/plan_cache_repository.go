package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripmood/internal/models/db_models"
)

// persistedPlanTTL bounds how long a stored plan stays servable.
const persistedPlanTTL = 24 * time.Hour

type PlanCacheRepository interface {
	// FindFresh returns nil when the key is absent or older than the TTL.
	FindFresh(ctx context.Context, cacheKey string) (*db_models.PlanCacheEntry, error)
	Upsert(ctx context.Context, entry *db_models.PlanCacheEntry) error
	CountAll(ctx context.Context) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type planCacheRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPlanCacheRepository(db *gorm.DB) PlanCacheRepository {
	return &planCacheRepository{
		db:  db,
		now: time.Now,
	}
}

func (p *planCacheRepository) FindFresh(ctx context.Context, cacheKey string) (*db_models.PlanCacheEntry, error) {
	var entry db_models.PlanCacheEntry
	err := p.db.WithContext(ctx).First(&entry, "cache_key = ?", cacheKey).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	cutoff := p.now().Add(-persistedPlanTTL).Unix()
	if entry.CreatedAt < cutoff {
		return nil, nil
	}

	return &entry, nil
}

func (p *planCacheRepository) Upsert(ctx context.Context, entry *db_models.PlanCacheEntry) error {
	entry.CreatedAt = p.now().Unix()
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_key"}},
			UpdateAll: true,
		}).
		Create(entry).Error
}

func (p *planCacheRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&db_models.PlanCacheEntry{}).Count(&count).Error
	return count, err
}

func (p *planCacheRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cutoff := p.now().Add(-persistedPlanTTL).Unix()
	res := p.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&db_models.PlanCacheEntry{})
	return res.RowsAffected, res.Error
}
