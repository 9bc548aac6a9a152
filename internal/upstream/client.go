package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"periscope/internal/config"
	"periscope/internal/model"
)

// FetchError describes a failed upstream request: either a non-2xx status
// or a transport/decode error.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream returned %d for %s", e.Status, e.URL)
	}
	return fmt.Sprintf("upstream request %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches stats and geolocation envelopes from the proxy stats API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new upstream Client
func NewClient(cfg *config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchStats fetches the stats envelope for a query window. On failure it
// returns an empty envelope alongside the error so callers always have a
// well-formed envelope to work with.
func (c *Client) FetchStats(ctx context.Context, params model.QueryParams) (*model.StatsEnvelope, error) {
	q := url.Values{}
	q.Set("from_date", params.From.Format(model.DateLayout))
	q.Set("to_date", params.To.Format(model.DateLayout))
	q.Set("granularity", string(params.Granularity))
	if params.HostFilter != "" {
		q.Set("host_filter", params.HostFilter)
	}

	var env model.StatsEnvelope
	if err := c.getJSON(ctx, c.baseURL+"/api/stats/daily?"+q.Encode(), &env); err != nil {
		return model.EmptyStatsEnvelope(), err
	}
	if env.Records == nil {
		env.Records = map[string]model.HostStats{}
	}
	return &env, nil
}

// FetchGeo fetches the geolocation envelope for all observed hosts.
func (c *Client) FetchGeo(ctx context.Context) (*model.GeoEnvelope, error) {
	var env model.GeoEnvelope
	if err := c.getJSON(ctx, c.baseURL+"/api/geo", &env); err != nil {
		return model.EmptyGeoEnvelope(), err
	}
	if env.Records == nil {
		env.Records = map[string]model.GeoRecord{}
	}
	return &env, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &FetchError{URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &FetchError{URL: u, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{URL: u, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
