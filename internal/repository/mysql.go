package repository

import (
	"context"
	"time"

	"periscope/internal/config"
	"periscope/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// archiveUpsertColumns are the columns refreshed when an already archived
// stats key is seen again.
var archiveUpsertColumns = []string{
	"host", "granularity", "bucket_start",
	"connections", "request_count", "blocked_attempts", "bytes_transferred",
	"blocked", "ips", "last_seen", "updated_at",
}

// MySQLRepository persists the stats archive in MySQL. A nil receiver is
// valid and turns every operation into a no-op, which is how the service
// runs with the archive disabled.
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.ArchiveRecord{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	if r == nil {
		return nil
	}
	return r.db
}

// SaveRecords upserts normalized records into the archive, keyed by their
// stats key so re-fetching a window refreshes rows instead of duplicating
// them
func (r *MySQLRepository) SaveRecords(ctx context.Context, records []model.StatsRecord) error {
	if r == nil || len(records) == 0 {
		return nil
	}

	rows := make([]model.ArchiveRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.NewArchiveRecord(rec))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "stats_key"}},
			DoUpdates: clause.AssignmentColumns(archiveUpsertColumns),
		}).
		Create(&rows).Error
}

// GetRecords reads archived records for a query window, oldest first.
// The host filter is a substring match, like the upstream's.
func (r *MySQLRepository) GetRecords(ctx context.Context, params model.QueryParams) ([]model.StatsRecord, error) {
	if r == nil {
		return nil, nil
	}

	query := r.db.WithContext(ctx).
		Where("granularity = ?", string(params.Granularity)).
		Where("bucket_start >= ? AND bucket_start < ?", params.From, params.To.AddDate(0, 0, 1))
	if params.HostFilter != "" {
		query = query.Where("host LIKE ?", "%"+params.HostFilter+"%")
	}

	var rows []model.ArchiveRecord
	if err := query.Order("bucket_start ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]model.StatsRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}
	return records, nil
}

// DeleteOlderThan removes archived records whose bucket was before cutoff
func (r *MySQLRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if r == nil {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("bucket_start IS NOT NULL AND bucket_start < ?", cutoff).
		Delete(&model.ArchiveRecord{})
	return result.RowsAffected, result.Error
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	if r == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
