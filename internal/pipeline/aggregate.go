package pipeline

import (
	"sort"

	"periscope/internal/model"
)

// DefaultTopN is the leaderboard size when the caller does not give one.
const DefaultTopN = 20

// Aggregate sums records into per-bucket time series rows, sorted ascending
// by bucket start. Records without a bucket timestamp are left out; unknown
// metric values contribute zero.
func Aggregate(records []model.StatsRecord, g model.Granularity) []model.TimeBucket {
	totals := make(map[int64]*model.TimeBucket)

	for _, rec := range records {
		if rec.BucketStart == nil {
			continue
		}
		start := g.Truncate(*rec.BucketStart)
		key := start.Unix()

		bucket, ok := totals[key]
		if !ok {
			bucket = &model.TimeBucket{BucketStart: start}
			totals[key] = bucket
		}
		bucket.Connections += rec.Connections.OrZero()
		bucket.RequestCount += rec.RequestCount.OrZero()
		bucket.BlockedAttempts += rec.BlockedAttempts.OrZero()
		bucket.BytesTransferredMB += rec.BytesTransferredMB
	}

	buckets := make([]model.TimeBucket, 0, len(totals))
	for _, bucket := range totals {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].BucketStart.Before(buckets[j].BucketStart)
	})

	return buckets
}

// TopN returns the n records with the largest values of the given metric,
// descending. Ties keep their original order; n <= 0 means DefaultTopN.
func TopN(records []model.StatsRecord, field model.MetricField, n int) []model.StatsRecord {
	if n <= 0 {
		n = DefaultTopN
	}

	out := make([]model.StatsRecord, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		return field.Value(out[i]) > field.Value(out[j])
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// HostActivity returns the per-bucket time series for a single host.
func HostActivity(records []model.StatsRecord, host string, g model.Granularity) []model.TimeBucket {
	return Aggregate(filterHost(records, host), g)
}

// HostDetail builds the drill-down view for one host, or nil when the host
// does not appear in the record set.
func HostDetail(records []model.StatsRecord, host string, g model.Granularity) *model.HostDetail {
	matched := filterHost(records, host)
	if len(matched) == 0 {
		return nil
	}

	detail := &model.HostDetail{Host: host}
	seen := make(map[string]struct{})
	for _, rec := range matched {
		detail.Connections += rec.Connections.OrZero()
		detail.RequestCount += rec.RequestCount.OrZero()
		detail.BlockedAttempts += rec.BlockedAttempts.OrZero()
		detail.BytesTransferredMB += rec.BytesTransferredMB
		for _, ip := range rec.IPs {
			if _, ok := seen[ip]; ok {
				continue
			}
			seen[ip] = struct{}{}
			detail.IPs = append(detail.IPs, ip)
		}
	}
	sort.Strings(detail.IPs)
	detail.Activity = Aggregate(matched, g)

	return detail
}

// Summarize totals a record set. Unlike Aggregate it keeps records whose
// key did not parse, so the summary always accounts for every record.
func Summarize(records []model.StatsRecord) model.Summary {
	summary := model.Summary{TotalRecords: len(records)}

	hosts := make(map[string]struct{})
	for _, rec := range records {
		if rec.Blocked {
			summary.BlockedRecords++
		} else {
			summary.UnblockedRecords++
		}
		hosts[rec.Host] = struct{}{}
		summary.Connections += rec.Connections.OrZero()
		summary.RequestCount += rec.RequestCount.OrZero()
		summary.BlockedAttempts += rec.BlockedAttempts.OrZero()
		summary.BytesTransferredMB += rec.BytesTransferredMB
	}
	summary.DistinctHosts = len(hosts)

	return summary
}

func filterHost(records []model.StatsRecord, host string) []model.StatsRecord {
	out := make([]model.StatsRecord, 0, len(records))
	for _, rec := range records {
		if rec.Host == host {
			out = append(out, rec)
		}
	}
	return out
}
