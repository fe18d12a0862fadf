// Package geocode resolves coordinates for search hits: provider-native fixed
// point coordinates first, then the Google Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/paulmach/orb"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Result is a geocoder answer. Matched is false when the address is unknown,
// which is not an error.
type Result struct {
	Point   orb.Point
	Matched bool
	Quality string
}

// Geocoder resolves an address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Result, error)
}

// Option configures the Google client.
type Option func(*googleClient)

func WithBaseURL(u string) Option {
	return func(g *googleClient) {
		if u != "" {
			g.baseURL = u
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(g *googleClient) {
		g.httpClient = hc
	}
}

func WithLimiter(l *rate.Limiter) Option {
	return func(g *googleClient) {
		g.limiter = l
	}
}

type googleClient struct {
	httpClient *http.Client
	baseURL    string
	key        string
	limiter    *rate.Limiter
}

// NewGoogle creates a Google Geocoding API client.
func NewGoogle(key string, opts ...Option) Geocoder {
	g := &googleClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    googleGeocodeURL,
		key:        key,
		limiter:    rate.NewLimiter(rate.Limit(20), 5),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// googleGeocodeResponse is the JSON response from the Google Geocoding API.
type googleGeocodeResponse struct {
	Results []googleResult `json:"results"`
	Status  string         `json:"status"`
}

type googleResult struct {
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
		LocationType string `json:"location_type"`
	} `json:"geometry"`
}

func (g *googleClient) Geocode(ctx context.Context, address string) (*Result, error) {
	if g.key == "" {
		return nil, eris.New("geocode: google api key not configured")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: google rate limit")
	}

	params := url.Values{
		"address":  {address},
		"key":      {g.key},
		"region":   {"kr"},
		"language": {"ko"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: google build request")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: google request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: google returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: google read body")
	}

	var googleResp googleGeocodeResponse
	if err := json.Unmarshal(body, &googleResp); err != nil {
		return nil, eris.Wrap(err, "geocode: google parse response")
	}

	switch googleResp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return &Result{Matched: false}, nil
	default:
		return nil, eris.Errorf("geocode: google status %s", googleResp.Status)
	}
	if len(googleResp.Results) == 0 {
		return &Result{Matched: false}, nil
	}

	loc := googleResp.Results[0].Geometry.Location
	p := orb.Point{loc.Lng, loc.Lat}
	if !Valid(p) {
		return &Result{Matched: false}, nil
	}
	return &Result{
		Point:   p,
		Matched: true,
		Quality: googleResp.Results[0].Geometry.LocationType,
	}, nil
}
