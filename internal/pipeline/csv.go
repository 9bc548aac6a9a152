package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"periscope/internal/model"
)

// csvColumns is the fixed export column order.
var csvColumns = []string{
	"key",
	"host",
	"bucket_start",
	"ips",
	"connections",
	"request_count",
	"blocked_attempts",
	"bytes_transferred_mb",
	"blocked",
	"last_seen",
}

// WriteCSV renders records as CSV with a fixed header row. Unknown counts
// become empty cells, not zeros, so spreadsheets can tell the two apart.
func WriteCSV(w io.Writer, records []model.StatsRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		bucket := ""
		if rec.BucketStart != nil {
			bucket = rec.BucketStart.Format(time.DateTime)
		}

		mb := ""
		if rec.BytesTransferred.Known {
			mb = formatFloat(rec.BytesTransferredMB)
		}

		row := []string{
			rec.Key,
			rec.Host,
			bucket,
			strings.Join(rec.IPs, ","),
			formatCount(rec.Connections),
			formatCount(rec.RequestCount),
			formatCount(rec.BlockedAttempts),
			mb,
			strconv.FormatBool(rec.Blocked),
			rec.LastSeen,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVFilename builds the download filename for an export of the given
// query window.
func CSVFilename(params model.QueryParams) string {
	return fmt.Sprintf("proxy_stats_%s_%s_%s.csv",
		params.Granularity,
		params.From.Format("20060102"),
		params.To.Format("20060102"))
}

func formatCount(c model.Count) string {
	if !c.Known {
		return ""
	}
	return formatFloat(c.Value)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
