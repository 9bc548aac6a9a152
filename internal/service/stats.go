package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"periscope/internal/config"
	"periscope/internal/model"
	"periscope/internal/pipeline"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrInvalidRange is returned when from_date is after to_date
	ErrInvalidRange = errors.New("invalid date range")
	// ErrInvalidGranularity is returned when the granularity is not day or hour
	ErrInvalidGranularity = errors.New("invalid granularity")
	// ErrInvalidBlockedFilter is returned when the blocked filter is unknown
	ErrInvalidBlockedFilter = errors.New("invalid blocked filter")
	// ErrInvalidHourRange is returned when the hour window is out of order or out of bounds
	ErrInvalidHourRange = errors.New("invalid hour range")
	// ErrInvalidMetricField is returned when the metric field is unknown
	ErrInvalidMetricField = errors.New("invalid metric field")
)

// StatsService answers stats queries. It fetches envelopes from the
// upstream through a TTL cache, archives every record it sees, and falls
// back to the archive when the upstream is unreachable. Errors are reserved
// for invalid parameters; a failed fetch degrades to an empty result with a
// diagnostic instead.
type StatsService struct {
	fetcher       FetcherInterface
	cache         CacheRepositoryInterface
	archive       ArchiveRepositoryInterface
	defaults      config.DefaultsConfig
	retentionDays int
	group         singleflight.Group
	now           func() time.Time
}

// NewStatsService creates a new Stats Service
func NewStatsService(
	fetcher FetcherInterface,
	cache CacheRepositoryInterface,
	archive ArchiveRepositoryInterface,
	cfg *config.Config,
) *StatsService {
	return &StatsService{
		fetcher:       fetcher,
		cache:         cache,
		archive:       archive,
		defaults:      cfg.Defaults,
		retentionDays: cfg.Archive.RetentionDays,
		now:           time.Now,
	}
}

// Query runs the full pipeline for one query window: fetch, normalize,
// filter, aggregate, summarize.
func (s *StatsService) Query(ctx context.Context, params model.QueryParams) (*model.QueryResult, error) {
	run, err := s.run(ctx, params)
	if err != nil {
		return nil, err
	}

	return &model.QueryResult{
		Params:     run.params,
		Records:    pipeline.SortByConnections(run.records),
		Buckets:    pipeline.Aggregate(run.records, run.params.Granularity),
		Summary:    pipeline.Summarize(run.records),
		Source:     run.source,
		Diagnostic: run.diagnostic,
	}, nil
}

// HostDetail builds the drill-down view for one host over the query
// window. A host absent from the window yields a zeroed detail, not an
// error.
func (s *StatsService) HostDetail(ctx context.Context, host string, params model.QueryParams) (*model.HostDetail, error) {
	run, err := s.run(ctx, params)
	if err != nil {
		return nil, err
	}

	detail := pipeline.HostDetail(run.records, host, run.params.Granularity)
	if detail == nil {
		detail = &model.HostDetail{Host: host}
	}
	if detail.IPs == nil {
		detail.IPs = []string{}
	}
	if detail.Activity == nil {
		detail.Activity = []model.TimeBucket{}
	}
	detail.Source = run.source
	detail.Diagnostic = run.diagnostic

	return detail, nil
}

// Top returns the records with the largest values of one metric within the
// query window. An empty field defaults to connections.
func (s *StatsService) Top(ctx context.Context, params model.QueryParams, field model.MetricField, n int) (*model.TopResult, error) {
	if field == "" {
		field = model.FieldConnections
	}
	if !field.IsValid() {
		return nil, ErrInvalidMetricField
	}

	run, err := s.run(ctx, params)
	if err != nil {
		return nil, err
	}

	return &model.TopResult{
		Field:      field,
		Records:    pipeline.TopN(run.records, field, n),
		Source:     run.source,
		Diagnostic: run.diagnostic,
	}, nil
}

// ExportCSV renders the query window as a CSV download, busiest hosts
// first.
func (s *StatsService) ExportCSV(ctx context.Context, params model.QueryParams) (*model.CSVExport, error) {
	run, err := s.run(ctx, params)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pipeline.WriteCSV(&buf, pipeline.SortByConnections(run.records)); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	return &model.CSVExport{
		Filename: pipeline.CSVFilename(run.params),
		Data:     buf.Bytes(),
	}, nil
}

// Refresh invalidates the envelope cache, re-fetches the default window
// and sweeps archived records past the retention horizon.
func (s *StatsService) Refresh(ctx context.Context) (*model.QueryResult, error) {
	s.cache.Clear(ctx)

	result, err := s.Query(ctx, model.QueryParams{})
	if err != nil {
		return nil, err
	}

	if s.retentionDays > 0 {
		cutoff := model.GranularityDay.Truncate(s.now().UTC()).AddDate(0, 0, -s.retentionDays)
		if removed, err := s.archive.DeleteOlderThan(ctx, cutoff); err != nil {
			log.Warn().Err(err).Msg("Archive retention sweep failed")
		} else if removed > 0 {
			log.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("Archive retention sweep completed")
		}
	}

	return result, nil
}

// queryRun is the shared outcome of one pipeline run: the filtered records
// in normalized (key) order, before any presentation sorting.
type queryRun struct {
	params     model.QueryParams
	records    []model.StatsRecord
	source     model.QuerySource
	diagnostic string
}

func (s *StatsService) run(ctx context.Context, params model.QueryParams) (*queryRun, error) {
	params, notes := s.withDefaults(params)
	if err := validateParams(params); err != nil {
		return nil, err
	}

	outcome := s.fetchStats(ctx, params)

	records := outcome.records
	if outcome.env != nil {
		records = pipeline.Normalize(outcome.env, params.Granularity)
		if outcome.env.Error != "" {
			notes = append(notes, "upstream reported: "+outcome.env.Error)
		}
	}
	if outcome.note != "" {
		notes = append(notes, outcome.note)
	}

	if params.Granularity == model.GranularityHour && (params.FromHour > 0 || params.ToHour < 23) {
		records = pipeline.FilterHours(records, params.FromHour, params.ToHour)
	}
	records = pipeline.FilterBlocked(records, params.Blocked)

	return &queryRun{
		params:     params,
		records:    records,
		source:     outcome.source,
		diagnostic: strings.Join(notes, "; "),
	}, nil
}

// fetchOutcome carries either an envelope (cache or upstream) or already
// normalized records (archive fallback).
type fetchOutcome struct {
	env     *model.StatsEnvelope
	records []model.StatsRecord
	source  model.QuerySource
	note    string
}

// fetchStats resolves the envelope for a window: cache, then upstream,
// then archive. Concurrent queries for the same window share one fetch.
func (s *StatsService) fetchStats(ctx context.Context, params model.QueryParams) fetchOutcome {
	key := cacheKey(params)

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		if data, ok := s.cache.Get(ctx, key); ok {
			var env model.StatsEnvelope
			if err := json.Unmarshal(data, &env); err == nil {
				return fetchOutcome{env: &env, source: model.SourceCache}, nil
			}
			log.Warn().Str("key", key).Msg("Dropping undecodable cache entry")
		}

		env, err := s.fetcher.FetchStats(ctx, params)
		if err == nil {
			if data, merr := json.Marshal(env); merr == nil {
				s.cache.Set(ctx, key, data)
			}
			if saveErr := s.archive.SaveRecords(ctx, pipeline.Normalize(env, params.Granularity)); saveErr != nil {
				log.Warn().Err(saveErr).Msg("Failed to archive stats records")
			}
			return fetchOutcome{env: env, source: model.SourceUpstream}, nil
		}

		log.Warn().Err(err).
			Str("from", params.From.Format(model.DateLayout)).
			Str("to", params.To.Format(model.DateLayout)).
			Msg("Upstream fetch failed")

		archived, archiveErr := s.archive.GetRecords(ctx, params)
		if archiveErr != nil {
			log.Warn().Err(archiveErr).Msg("Archive read failed")
		}
		if len(archived) > 0 {
			return fetchOutcome{
				records: archived,
				source:  model.SourceArchive,
				note:    "upstream unavailable, serving archived data",
			}, nil
		}

		return fetchOutcome{
			env:    model.EmptyStatsEnvelope(),
			source: model.SourceUpstream,
			note:   "upstream unavailable: " + err.Error(),
		}, nil
	})

	return v.(fetchOutcome)
}

// withDefaults fills unset parameters from the configured defaults and
// clamps the window to what the upstream can still answer, noting every
// clamp for the result diagnostic.
func (s *StatsService) withDefaults(params model.QueryParams) (model.QueryParams, []string) {
	var notes []string
	today := model.GranularityDay.Truncate(s.now().UTC())

	if params.Granularity == "" {
		params.Granularity = model.Granularity(s.defaults.Granularity)
	}
	if params.Blocked == "" {
		params.Blocked = model.BlockedFilterAll
	}

	if params.To.IsZero() {
		params.To = today
	} else if params.To.After(today) {
		notes = append(notes, "to_date clamped to today")
		params.To = today
	}

	if params.From.IsZero() {
		days := s.defaults.RangeDays
		if params.Granularity == model.GranularityHour {
			days = s.defaults.HourRangeDays
		}
		params.From = params.To.AddDate(0, 0, -days)
	}

	horizon := today.AddDate(0, 0, -params.Granularity.RetentionDays())
	if params.From.Before(horizon) {
		notes = append(notes, fmt.Sprintf("from_date clamped to %s, the upstream retains %s stats for %d days",
			horizon.Format(model.DateLayout), params.Granularity, params.Granularity.RetentionDays()))
		params.From = horizon
	}

	if params.FromHour == 0 && params.ToHour == 0 {
		params.ToHour = 23
	}

	return params, notes
}

func validateParams(params model.QueryParams) error {
	if !params.Granularity.IsValid() {
		return ErrInvalidGranularity
	}
	if !params.Blocked.IsValid() {
		return ErrInvalidBlockedFilter
	}
	if params.From.After(params.To) {
		return ErrInvalidRange
	}
	if params.FromHour < 0 || params.ToHour > 23 || params.FromHour > params.ToHour {
		return ErrInvalidHourRange
	}
	return nil
}

// cacheKey identifies an envelope by the parameters the upstream sees.
// Hour window and blocked filter are applied after the fetch and are not
// part of the key.
func cacheKey(params model.QueryParams) string {
	return fmt.Sprintf("stats:%s:%s:%s:%s",
		params.From.Format(model.DateLayout),
		params.To.Format(model.DateLayout),
		params.Granularity,
		params.HostFilter)
}
