package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatsKey_Day(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantHost   string
		wantBucket string
	}{
		{
			name:       "valid day key",
			key:        "HOST:example.com:DAY:2024-04-25",
			wantHost:   "example.com",
			wantBucket: "2024-04-25T00:00:00Z",
		},
		{
			name:       "host with dashes and digits",
			key:        "HOST:cdn-3.example.net:DAY:2023-12-31",
			wantHost:   "cdn-3.example.net",
			wantBucket: "2023-12-31T00:00:00Z",
		},
		{
			name:     "three segments",
			key:      "HOST:example.com:DAY",
			wantHost: "example.com",
		},
		{
			name:     "five segments",
			key:      "HOST:example.com:DAY:2024-04-25:extra",
			wantHost: "example.com",
		},
		{
			name:     "wrong prefix",
			key:      "PEER:example.com:DAY:2024-04-25",
			wantHost: "example.com",
		},
		{
			name:     "hour tag under day granularity",
			key:      "HOST:example.com:HOUR:2024-04-25-13",
			wantHost: "example.com",
		},
		{
			name:     "non-numeric date",
			key:      "HOST:example.com:DAY:not-a-date",
			wantHost: "example.com",
		},
		{
			name:     "month out of range",
			key:      "HOST:example.com:DAY:2024-13-01",
			wantHost: "example.com",
		},
		{
			name:     "empty key",
			key:      "",
			wantHost: "unknown",
		},
		{
			name:     "single segment",
			key:      "garbage",
			wantHost: "unknown",
		},
		{
			name:     "empty host segment",
			key:      "HOST::DAY:2024-04-25",
			wantHost: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, bucket := ParseStatsKey(tt.key, GranularityDay)
			assert.Equal(t, tt.wantHost, host)

			if tt.wantBucket == "" {
				assert.Nil(t, bucket)
				return
			}
			require.NotNil(t, bucket)
			want, err := time.Parse(time.RFC3339, tt.wantBucket)
			require.NoError(t, err)
			assert.True(t, bucket.Equal(want))
		})
	}
}

func TestParseStatsKey_Hour(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantHost   string
		wantBucket string
	}{
		{
			name:       "valid hour key",
			key:        "HOST:example.com:HOUR:2024-04-25-13",
			wantHost:   "example.com",
			wantBucket: "2024-04-25T13:00:00Z",
		},
		{
			name:       "midnight hour",
			key:        "HOST:example.com:HOUR:2024-04-25-00",
			wantHost:   "example.com",
			wantBucket: "2024-04-25T00:00:00Z",
		},
		{
			name:     "day tag under hour granularity",
			key:      "HOST:example.com:DAY:2024-04-25",
			wantHost: "example.com",
		},
		{
			name:     "missing hour component",
			key:      "HOST:example.com:HOUR:2024-04-25",
			wantHost: "example.com",
		},
		{
			name:     "hour out of range",
			key:      "HOST:example.com:HOUR:2024-04-25-24",
			wantHost: "example.com",
		},
		{
			name:     "non-numeric hour",
			key:      "HOST:example.com:HOUR:2024-04-25-xx",
			wantHost: "example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, bucket := ParseStatsKey(tt.key, GranularityHour)
			assert.Equal(t, tt.wantHost, host)

			if tt.wantBucket == "" {
				assert.Nil(t, bucket)
				return
			}
			require.NotNil(t, bucket)
			want, err := time.Parse(time.RFC3339, tt.wantBucket)
			require.NoError(t, err)
			assert.True(t, bucket.Equal(want))
		})
	}
}

func TestParseStatsKey_DayBucketIsMidnight(t *testing.T) {
	days := []string{"2024-01-01", "2024-02-29", "2024-06-15", "2025-12-31"}

	for _, day := range days {
		t.Run(day, func(t *testing.T) {
			host, bucket := ParseStatsKey("HOST:h.example:"+"DAY:"+day, GranularityDay)
			require.NotNil(t, bucket)
			assert.Equal(t, "h.example", host)
			assert.Equal(t, day, bucket.Format(DateLayout))
			assert.Equal(t, 0, bucket.Hour())
			assert.Equal(t, 0, bucket.Minute())
			assert.Equal(t, 0, bucket.Second())
		})
	}
}

func TestFormatStatsKey(t *testing.T) {
	ts := time.Date(2024, 4, 25, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, "HOST:example.com:DAY:2024-04-25", FormatStatsKey("example.com", GranularityDay, ts))
	assert.Equal(t, "HOST:example.com:HOUR:2024-04-25-13", FormatStatsKey("example.com", GranularityHour, ts))
}

func TestFormatStatsKey_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 4, 25, 13, 0, 0, 0, time.UTC)

	for _, g := range []Granularity{GranularityDay, GranularityHour} {
		t.Run(string(g), func(t *testing.T) {
			key := FormatStatsKey("proxy.example.org", g, ts)
			host, bucket := ParseStatsKey(key, g)

			assert.Equal(t, "proxy.example.org", host)
			require.NotNil(t, bucket)
			assert.True(t, bucket.Equal(g.Truncate(ts)))
		})
	}
}
