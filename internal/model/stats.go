package model

import (
	"strings"
	"time"
)

// BytesPerMB converts the upstream's byte counts to megabytes.
const BytesPerMB = 1 << 20

// HostStats is one record of the upstream stats envelope.
type HostStats struct {
	Host             string `json:"host"`
	IPs              string `json:"ips"`
	Connections      Count  `json:"connections"`
	RequestCount     Count  `json:"request_count"`
	BlockedAttempts  Count  `json:"blocked_attempts"`
	BytesTransferred Count  `json:"bytes_transferred"`
	Blocked          bool   `json:"blocked"`
	LastSeen         string `json:"last_seen"`
}

// StatsEnvelope is the top-level response of GET /api/stats/daily.
type StatsEnvelope struct {
	Keys    []string             `json:"keys"`
	Records map[string]HostStats `json:"records"`
	Error   string               `json:"error,omitempty"`
}

// EmptyStatsEnvelope returns an envelope with no records, the degraded
// result of a failed fetch.
func EmptyStatsEnvelope() *StatsEnvelope {
	return &StatsEnvelope{Keys: []string{}, Records: map[string]HostStats{}}
}

// StatsRecord is one normalized row per (host, bucket) stats key. The raw
// record host and the key-derived host are both retained; they may differ.
// BucketStart is nil when the key did not parse, which keeps the record out
// of time-series aggregation but not out of summaries.
type StatsRecord struct {
	Key                string      `json:"key"`
	Host               string      `json:"host"`
	HostFromKey        string      `json:"host_from_key"`
	BucketStart        *time.Time  `json:"bucket_start"`
	Granularity        Granularity `json:"granularity"`
	Connections        Count       `json:"connections"`
	RequestCount       Count       `json:"request_count"`
	BlockedAttempts    Count       `json:"blocked_attempts"`
	BytesTransferred   Count       `json:"bytes_transferred"`
	BytesTransferredMB float64     `json:"bytes_transferred_mb"`
	Blocked            bool        `json:"blocked"`
	IPs                []string    `json:"ips"`
	LastSeen           string      `json:"last_seen"`
}

// TimeBucket is the per-bucket sum of all records sharing a bucket start.
// Unknown metric values contribute zero to the sums.
type TimeBucket struct {
	BucketStart        time.Time `json:"bucket_start"`
	Connections        float64   `json:"connections"`
	RequestCount       float64   `json:"request_count"`
	BlockedAttempts    float64   `json:"blocked_attempts"`
	BytesTransferredMB float64   `json:"bytes_transferred_mb"`
}

// Summary totals a record set without time bucketing, so records with an
// unparsable key still count here.
type Summary struct {
	TotalRecords       int     `json:"total_records"`
	BlockedRecords     int     `json:"blocked_records"`
	UnblockedRecords   int     `json:"unblocked_records"`
	DistinctHosts      int     `json:"distinct_hosts"`
	Connections        float64 `json:"connections"`
	RequestCount       float64 `json:"request_count"`
	BlockedAttempts    float64 `json:"blocked_attempts"`
	BytesTransferredMB float64 `json:"bytes_transferred_mb"`
}

// HostDetail is the drill-down view for a single host: summed metrics, the
// union of associated IPs, and per-bucket activity.
type HostDetail struct {
	Host               string       `json:"host"`
	Connections        float64      `json:"connections"`
	RequestCount       float64      `json:"request_count"`
	BlockedAttempts    float64      `json:"blocked_attempts"`
	BytesTransferredMB float64      `json:"bytes_transferred_mb"`
	IPs                []string     `json:"ips"`
	Activity           []TimeBucket `json:"activity"`
	Source             QuerySource  `json:"source,omitempty"`
	Diagnostic         string       `json:"diagnostic,omitempty"`
}

// SplitIPs splits the upstream's comma-joined IP list, trimming whitespace
// and dropping duplicates while preserving first-seen order.
func SplitIPs(s string) []string {
	if s == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var ips []string
	for _, ip := range strings.Split(s, ",") {
		ip = strings.TrimSpace(ip)
		if ip == "" {
			continue
		}
		if _, ok := seen[ip]; ok {
			continue
		}
		seen[ip] = struct{}{}
		ips = append(ips, ip)
	}
	return ips
}
