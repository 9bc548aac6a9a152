package repository

import (
	"context"
	"time"

	"periscope/internal/model"
)

// CacheRepository defines the interface for the envelope cache: a TTL'd
// key/value store for serialized upstream responses. Misses and backend
// failures both read as a miss; the cache is best-effort.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Clear(ctx context.Context)
	Close() error
}

// ArchiveRepository defines the interface for the stats archive, which
// keeps records beyond the upstream's retention window.
type ArchiveRepository interface {
	SaveRecords(ctx context.Context, records []model.StatsRecord) error
	GetRecords(ctx context.Context, params model.QueryParams) ([]model.StatsRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}
