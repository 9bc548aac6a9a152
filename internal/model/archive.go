package model

import (
	"strings"
	"time"
)

// ArchiveRecord is the MySQL row for one archived stats record. The
// upstream evicts hourly stats after 15 days and daily stats after 90; the
// archive keeps a copy of every record seen so history survives eviction
// and queries can be answered while the upstream is down. Unknown counts
// are stored as NULL, never as zero.
type ArchiveRecord struct {
	ID               int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	StatsKey         string     `json:"stats_key" gorm:"type:varchar(191);uniqueIndex;not null"`
	Host             string     `json:"host" gorm:"type:varchar(255);index"`
	Granularity      string     `json:"granularity" gorm:"type:varchar(8)"`
	BucketStart      *time.Time `json:"bucket_start" gorm:"index"`
	Connections      *float64   `json:"connections"`
	RequestCount     *float64   `json:"request_count"`
	BlockedAttempts  *float64   `json:"blocked_attempts"`
	BytesTransferred *float64   `json:"bytes_transferred"`
	Blocked          bool       `json:"blocked"`
	IPs              string     `json:"ips" gorm:"type:varchar(1024)"`
	LastSeen         string     `json:"last_seen" gorm:"type:varchar(64)"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for ArchiveRecord
func (ArchiveRecord) TableName() string {
	return "stats_archive"
}

// NewArchiveRecord converts a normalized record into its archive row.
func NewArchiveRecord(rec StatsRecord) ArchiveRecord {
	return ArchiveRecord{
		StatsKey:         rec.Key,
		Host:             rec.Host,
		Granularity:      string(rec.Granularity),
		BucketStart:      rec.BucketStart,
		Connections:      rec.Connections.Ptr(),
		RequestCount:     rec.RequestCount.Ptr(),
		BlockedAttempts:  rec.BlockedAttempts.Ptr(),
		BytesTransferred: rec.BytesTransferred.Ptr(),
		Blocked:          rec.Blocked,
		IPs:              strings.Join(rec.IPs, ","),
		LastSeen:         rec.LastSeen,
	}
}

// Record converts the archive row back into a normalized record,
// rederiving the key host and the MB column.
func (a ArchiveRecord) Record() StatsRecord {
	g := Granularity(a.Granularity)
	hostFromKey, _ := ParseStatsKey(a.StatsKey, g)
	bytesTransferred := CountFromPtr(a.BytesTransferred)

	return StatsRecord{
		Key:                a.StatsKey,
		Host:               a.Host,
		HostFromKey:        hostFromKey,
		BucketStart:        a.BucketStart,
		Granularity:        g,
		Connections:        CountFromPtr(a.Connections),
		RequestCount:       CountFromPtr(a.RequestCount),
		BlockedAttempts:    CountFromPtr(a.BlockedAttempts),
		BytesTransferred:   bytesTransferred,
		BytesTransferredMB: bytesTransferred.OrZero() / BytesPerMB,
		Blocked:            a.Blocked,
		IPs:                SplitIPs(a.IPs),
		LastSeen:           a.LastSeen,
	}
}
