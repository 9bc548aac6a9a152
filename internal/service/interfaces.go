package service

import (
	"context"
	"time"

	"periscope/internal/model"
)

// FetcherInterface defines the interface for upstream fetch operations (for testing)
type FetcherInterface interface {
	FetchStats(ctx context.Context, params model.QueryParams) (*model.StatsEnvelope, error)
	FetchGeo(ctx context.Context) (*model.GeoEnvelope, error)
}

// CacheRepositoryInterface defines the interface for envelope cache operations (for testing)
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Clear(ctx context.Context)
}

// ArchiveRepositoryInterface defines the interface for archive operations (for testing)
type ArchiveRepositoryInterface interface {
	SaveRecords(ctx context.Context, records []model.StatsRecord) error
	GetRecords(ctx context.Context, params model.QueryParams) ([]model.StatsRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// StatsServiceInterface defines the interface for stats query operations
type StatsServiceInterface interface {
	Query(ctx context.Context, params model.QueryParams) (*model.QueryResult, error)
	HostDetail(ctx context.Context, host string, params model.QueryParams) (*model.HostDetail, error)
	Top(ctx context.Context, params model.QueryParams, field model.MetricField, n int) (*model.TopResult, error)
	ExportCSV(ctx context.Context, params model.QueryParams) (*model.CSVExport, error)
	Refresh(ctx context.Context) (*model.QueryResult, error)
}

// GeoServiceInterface defines the interface for geolocation operations
type GeoServiceInterface interface {
	Snapshot(ctx context.Context) (*model.GeoResult, error)
	Summary(ctx context.Context) (*model.GeoSummary, error)
}
