package service

import (
	"context"
	"encoding/json"

	"periscope/internal/model"
	"periscope/internal/pipeline"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// geoCacheKey is the single envelope cache entry for the geo table; the
// upstream serves one snapshot for all hosts.
const geoCacheKey = "geo:hosts"

// GeoService answers host geolocation queries. Like StatsService it never
// fails a request over an upstream outage; it degrades to an empty table
// with a diagnostic.
type GeoService struct {
	fetcher FetcherInterface
	cache   CacheRepositoryInterface
	group   singleflight.Group
}

// NewGeoService creates a new Geo Service
func NewGeoService(fetcher FetcherInterface, cache CacheRepositoryInterface) *GeoService {
	return &GeoService{
		fetcher: fetcher,
		cache:   cache,
	}
}

// Snapshot returns the geolocation table for all observed hosts.
func (s *GeoService) Snapshot(ctx context.Context) (*model.GeoResult, error) {
	outcome := s.fetchGeo(ctx)

	return &model.GeoResult{
		Records:    pipeline.GeoTable(outcome.env),
		Source:     outcome.source,
		Diagnostic: outcome.note,
	}, nil
}

// Summary aggregates the geolocation table for overview cards and the map.
func (s *GeoService) Summary(ctx context.Context) (*model.GeoSummary, error) {
	outcome := s.fetchGeo(ctx)

	summary := pipeline.GeoSummarize(pipeline.GeoTable(outcome.env))
	summary.Source = outcome.source
	summary.Diagnostic = outcome.note

	return &summary, nil
}

type geoOutcome struct {
	env    *model.GeoEnvelope
	source model.QuerySource
	note   string
}

func (s *GeoService) fetchGeo(ctx context.Context) geoOutcome {
	v, _, _ := s.group.Do(geoCacheKey, func() (interface{}, error) {
		if data, ok := s.cache.Get(ctx, geoCacheKey); ok {
			var env model.GeoEnvelope
			if err := json.Unmarshal(data, &env); err == nil {
				return geoOutcome{env: &env, source: model.SourceCache, note: env.Error}, nil
			}
			log.Warn().Str("key", geoCacheKey).Msg("Dropping undecodable cache entry")
		}

		env, err := s.fetcher.FetchGeo(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Geo fetch failed")
			return geoOutcome{
				env:    env,
				source: model.SourceUpstream,
				note:   "upstream unavailable: " + err.Error(),
			}, nil
		}

		if data, merr := json.Marshal(env); merr == nil {
			s.cache.Set(ctx, geoCacheKey, data)
		}
		return geoOutcome{env: env, source: model.SourceUpstream, note: env.Error}, nil
	})

	return v.(geoOutcome)
}
