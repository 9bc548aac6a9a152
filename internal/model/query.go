package model

import "time"

// DateLayout is the date format used by the upstream query parameters.
const DateLayout = "2006-01-02"

// Granularity is the time-bucket resolution for stats queries.
type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityHour Granularity = "hour"
)

// IsValid checks if the granularity is a supported value.
func (g Granularity) IsValid() bool {
	return g == GranularityDay || g == GranularityHour
}

// BucketLayout returns the time layout of this granularity's bucket
// encoding inside stats keys.
func (g Granularity) BucketLayout() string {
	if g == GranularityHour {
		return "2006-01-02-15"
	}
	return "2006-01-02"
}

// Truncate rounds t down to the start of its bucket.
func (g Granularity) Truncate(t time.Time) time.Time {
	if g == GranularityHour {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RetentionDays returns how long the upstream keeps stats at this
// granularity before evicting them: 15 days for hourly, 90 for daily.
func (g Granularity) RetentionDays() int {
	if g == GranularityHour {
		return 15
	}
	return 90
}

// BlockedFilter selects records by their blocked flag.
type BlockedFilter string

const (
	BlockedFilterAll       BlockedFilter = "all"
	BlockedFilterBlocked   BlockedFilter = "blocked"
	BlockedFilterUnblocked BlockedFilter = "unblocked"
)

// IsValid checks if the filter is a supported value.
func (f BlockedFilter) IsValid() bool {
	return f == BlockedFilterAll || f == BlockedFilterBlocked || f == BlockedFilterUnblocked
}

// MetricField names a summable metric column of StatsRecord.
type MetricField string

const (
	FieldConnections        MetricField = "connections"
	FieldRequestCount       MetricField = "request_count"
	FieldBlockedAttempts    MetricField = "blocked_attempts"
	FieldBytesTransferredMB MetricField = "bytes_transferred_mb"
)

// IsValid checks if the field names a known metric column.
func (f MetricField) IsValid() bool {
	switch f {
	case FieldConnections, FieldRequestCount, FieldBlockedAttempts, FieldBytesTransferredMB:
		return true
	}
	return false
}

// Value extracts this metric from a record, with unknown counting as 0.
func (f MetricField) Value(rec StatsRecord) float64 {
	switch f {
	case FieldRequestCount:
		return rec.RequestCount.OrZero()
	case FieldBlockedAttempts:
		return rec.BlockedAttempts.OrZero()
	case FieldBytesTransferredMB:
		return rec.BytesTransferredMB
	default:
		return rec.Connections.OrZero()
	}
}

// QueryParams describes one stats query. Zero-value fields mean "apply the
// configured defaults"; an all-zero hour window selects the whole day.
type QueryParams struct {
	From        time.Time     `json:"from"`
	To          time.Time     `json:"to"`
	Granularity Granularity   `json:"granularity"`
	Blocked     BlockedFilter `json:"blocked"`
	HostFilter  string        `json:"host_filter,omitempty"`
	FromHour    int           `json:"from_hour"`
	ToHour      int           `json:"to_hour"`
}

// QuerySource tells where a result's records came from.
type QuerySource string

const (
	SourceUpstream QuerySource = "upstream"
	SourceCache    QuerySource = "cache"
	SourceArchive  QuerySource = "archive"
)

// QueryResult is the outcome of one pipeline run: the filtered flat view,
// its time-bucketed aggregate and summary, plus a diagnostic when the
// result is degraded. Empty records with an empty diagnostic is a valid
// no-data state, not a failure.
type QueryResult struct {
	Params     QueryParams   `json:"params"`
	Records    []StatsRecord `json:"records,omitempty"`
	Buckets    []TimeBucket  `json:"buckets,omitempty"`
	Summary    Summary       `json:"summary"`
	Source     QuerySource   `json:"source"`
	Diagnostic string        `json:"diagnostic,omitempty"`
}

// TopResult holds the records with the largest values of one metric.
type TopResult struct {
	Field      MetricField   `json:"field"`
	Records    []StatsRecord `json:"records"`
	Source     QuerySource   `json:"source"`
	Diagnostic string        `json:"diagnostic,omitempty"`
}

// CSVExport is a rendered CSV download.
type CSVExport struct {
	Filename string
	Data     []byte
}
