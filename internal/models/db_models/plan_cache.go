package db_models

import "gorm.io/datatypes"

// PlanCacheEntry persists generated plans keyed by the request fingerprint.
type PlanCacheEntry struct {
	CacheKey    string `gorm:"primaryKey;size:32"`
	Destination string
	Days        int
	Mood        string
	PlanData    datatypes.JSON
	CreatedAt   int64 `gorm:"autoCreateTime"`
}
