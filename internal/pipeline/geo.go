package pipeline

import (
	"sort"

	"periscope/internal/model"
)

// GeoTable flattens a geo envelope into rows sorted by host. Records whose
// host field is empty take the host from their map key.
func GeoTable(env *model.GeoEnvelope) []model.GeoRecord {
	if env == nil {
		return []model.GeoRecord{}
	}

	records := make([]model.GeoRecord, 0, len(env.Records))
	for host, rec := range env.Records {
		if rec.Host == "" {
			rec.Host = host
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Host < records[j].Host
	})

	return records
}

// GeoSummarize aggregates the geo table: per-country host counts sorted by
// size, and the subset of records usable as map points. Records without a
// country or city stay in the totals but not in the respective breakdowns.
func GeoSummarize(records []model.GeoRecord) model.GeoSummary {
	summary := model.GeoSummary{TotalHosts: len(records)}

	countries := make(map[string]int)
	cities := make(map[string]struct{})
	points := make([]model.GeoRecord, 0, len(records))
	for _, rec := range records {
		if rec.Country != "" {
			countries[rec.Country]++
		}
		if rec.City != "" {
			cities[rec.City] = struct{}{}
		}
		if rec.HasCoordinates() {
			points = append(points, rec)
		}
	}

	summary.DistinctCountries = len(countries)
	summary.DistinctCities = len(cities)
	summary.MapPoints = points

	summary.Countries = make([]model.CountryCount, 0, len(countries))
	for country, hosts := range countries {
		summary.Countries = append(summary.Countries, model.CountryCount{Country: country, Hosts: hosts})
	}
	sort.Slice(summary.Countries, func(i, j int) bool {
		if summary.Countries[i].Hosts != summary.Countries[j].Hosts {
			return summary.Countries[i].Hosts > summary.Countries[j].Hosts
		}
		return summary.Countries[i].Country < summary.Countries[j].Country
	})

	return summary
}
