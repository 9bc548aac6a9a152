package pipeline

import (
	"sort"

	"periscope/internal/model"
)

// Normalize flattens a stats envelope into one record per entry, parsing
// each stats key for its bucket timestamp. A key that does not parse yields
// a record with a nil BucketStart rather than an error. Records come back
// sorted by key so the output is deterministic regardless of map order.
func Normalize(env *model.StatsEnvelope, g model.Granularity) []model.StatsRecord {
	if env == nil {
		return []model.StatsRecord{}
	}

	records := make([]model.StatsRecord, 0, len(env.Records))
	for key, raw := range env.Records {
		keyHost, bucket := model.ParseStatsKey(key, g)

		host := raw.Host
		if host == "" {
			host = keyHost
		}

		records = append(records, model.StatsRecord{
			Key:                key,
			Host:               host,
			HostFromKey:        keyHost,
			BucketStart:        bucket,
			Granularity:        g,
			Connections:        raw.Connections,
			RequestCount:       raw.RequestCount,
			BlockedAttempts:    raw.BlockedAttempts,
			BytesTransferred:   raw.BytesTransferred,
			BytesTransferredMB: raw.BytesTransferred.OrZero() / model.BytesPerMB,
			Blocked:            raw.Blocked,
			IPs:                model.SplitIPs(raw.IPs),
			LastSeen:           raw.LastSeen,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Key < records[j].Key
	})

	return records
}

// FilterBlocked keeps the records matching the blocked filter, preserving
// order. The all filter (and an unset one) passes everything through.
func FilterBlocked(records []model.StatsRecord, filter model.BlockedFilter) []model.StatsRecord {
	if filter == model.BlockedFilterAll || filter == "" {
		return records
	}

	wantBlocked := filter == model.BlockedFilterBlocked
	out := make([]model.StatsRecord, 0, len(records))
	for _, rec := range records {
		if rec.Blocked == wantBlocked {
			out = append(out, rec)
		}
	}
	return out
}

// FilterHours keeps the records whose bucket falls inside the [from, to]
// hour window. Records without a bucket timestamp cannot be placed in the
// window and are dropped.
func FilterHours(records []model.StatsRecord, from, to int) []model.StatsRecord {
	out := make([]model.StatsRecord, 0, len(records))
	for _, rec := range records {
		if rec.BucketStart == nil {
			continue
		}
		hour := rec.BucketStart.Hour()
		if hour >= from && hour <= to {
			out = append(out, rec)
		}
	}
	return out
}

// SortByConnections orders records by connection count descending, ties
// keeping their original order. Unknown counts sort as zero.
func SortByConnections(records []model.StatsRecord) []model.StatsRecord {
	out := make([]model.StatsRecord, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Connections.OrZero() > out[j].Connections.OrZero()
	})

	return out
}
