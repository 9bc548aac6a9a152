package model

import (
	"strings"
	"time"
)

// Stats keys have exactly four colon-separated segments:
//
//	HOST:<host>:DAY:2006-01-02
//	HOST:<host>:HOUR:2006-01-02-15
const (
	statsKeyPrefix = "HOST"
	dayTag         = "DAY"
	hourTag        = "HOUR"
)

// keyTag returns the granularity segment used inside stats keys.
func (g Granularity) keyTag() string {
	if g == GranularityHour {
		return hourTag
	}
	return dayTag
}

// FormatStatsKey builds the upstream key for a host and bucket time.
func FormatStatsKey(host string, g Granularity, t time.Time) string {
	return statsKeyPrefix + ":" + host + ":" + g.keyTag() + ":" + t.Format(g.BucketLayout())
}

// ParseStatsKey extracts the host and bucket start from a stats key. A
// malformed key (wrong segment count, wrong granularity tag, unparsable
// bucket encoding) yields a nil bucket, never an error. The host falls
// back to "unknown" when the key carries no host segment.
func ParseStatsKey(key string, g Granularity) (host string, bucket *time.Time) {
	parts := strings.Split(key, ":")

	host = "unknown"
	if len(parts) >= 2 && parts[1] != "" {
		host = parts[1]
	}

	if len(parts) != 4 || parts[0] != statsKeyPrefix || parts[2] != g.keyTag() {
		return host, nil
	}
	if g == GranularityHour && strings.Count(parts[3], "-") != 3 {
		return host, nil
	}

	t, err := time.Parse(g.BucketLayout(), parts[3])
	if err != nil {
		return host, nil
	}
	return host, &t
}
