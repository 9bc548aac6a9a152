package model

// GeoRecord is one row of the upstream geolocation envelope, keyed by host.
type GeoRecord struct {
	Host        string  `json:"host"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Region      string  `json:"region"`
	Timezone    string  `json:"timezone"`
}

// HasCoordinates checks if the record carries a usable map position.
// Records without one stay in tabular views but are dropped from map points.
func (g GeoRecord) HasCoordinates() bool {
	return g.Latitude != 0 || g.Longitude != 0
}

// GeoEnvelope is the top-level response of GET /api/geo.
type GeoEnvelope struct {
	Records map[string]GeoRecord `json:"records"`
	Error   string               `json:"error,omitempty"`
}

// EmptyGeoEnvelope returns an envelope with no records, the degraded
// result of a failed fetch.
func EmptyGeoEnvelope() *GeoEnvelope {
	return &GeoEnvelope{Records: map[string]GeoRecord{}}
}

// GeoResult is the geo table plus provenance, mirroring QueryResult.
type GeoResult struct {
	Records    []GeoRecord `json:"records"`
	Source     QuerySource `json:"source"`
	Diagnostic string      `json:"diagnostic,omitempty"`
}

// CountryCount is the number of observed hosts in one country.
type CountryCount struct {
	Country string `json:"country"`
	Hosts   int    `json:"hosts"`
}

// GeoSummary aggregates the geo table for overview cards and the map.
type GeoSummary struct {
	TotalHosts        int            `json:"total_hosts"`
	DistinctCountries int            `json:"distinct_countries"`
	DistinctCities    int            `json:"distinct_cities"`
	Countries         []CountryCount `json:"countries"`
	MapPoints         []GeoRecord    `json:"map_points"`
	Source            QuerySource    `json:"source,omitempty"`
	Diagnostic        string         `json:"diagnostic,omitempty"`
}
