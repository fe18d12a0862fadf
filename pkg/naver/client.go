// Package naver is a client for the Naver Search Open API (local and blog search).
package naver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://openapi.naver.com/v1/search"

// Upper bounds accepted by the API for the display parameter.
const (
	maxLocalDisplay = 5
	maxBlogDisplay  = 100
)

var (
	// ErrRateLimited is returned when the local limiter is exhausted or the
	// API answers 429. No request is sent in the former case.
	ErrRateLimited = eris.New("naver: rate limited")
	// ErrMalformedResponse is returned when the payload is not a search result.
	ErrMalformedResponse = eris.New("naver: malformed response")
)

// Client performs Naver Search API operations.
type Client interface {
	LocalSearch(ctx context.Context, query string, display int) (*LocalResponse, error)
	BlogSearch(ctx context.Context, query string, display int) (*BlogResponse, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRateLimit caps requests per second across both endpoints.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
		}
	}
}

// WithLimiter installs a prepared limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *httpClient) {
		c.limiter = l
	}
}

type httpClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	http         *http.Client
	limiter      *rate.Limiter
}

// NewClient creates a Naver Search API client.
func NewClient(clientID, clientSecret string, opts ...Option) Client {
	c := &httpClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      defaultBaseURL,
		http: &http.Client{
			Timeout: 8 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) LocalSearch(ctx context.Context, query string, display int) (*LocalResponse, error) {
	params := url.Values{
		"query":   {query},
		"display": {strconv.Itoa(clamp(display, 1, maxLocalDisplay))},
		"start":   {"1"},
		"sort":    {"random"},
	}
	var out LocalResponse
	if err := c.get(ctx, "/local.json", params, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		return nil, eris.Wrap(ErrMalformedResponse, "naver: local search has no items")
	}
	return &out, nil
}

func (c *httpClient) BlogSearch(ctx context.Context, query string, display int) (*BlogResponse, error) {
	params := url.Values{
		"query":   {query},
		"display": {strconv.Itoa(clamp(display, 1, maxBlogDisplay))},
		"start":   {"1"},
		"sort":    {"sim"},
	}
	var out BlogResponse
	if err := c.get(ctx, "/blog.json", params, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		return nil, eris.Wrap(ErrMalformedResponse, "naver: blog search has no items")
	}
	return &out, nil
}

func (c *httpClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.clientID == "" || c.clientSecret == "" {
		return eris.New("naver: client credentials not configured")
	}
	if !c.limiter.Allow() {
		return ErrRateLimited
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "naver: create request")
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "naver: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return eris.Wrap(err, "naver: read response")
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(ErrMalformedResponse, err.Error())
	}
	return nil
}

// StatusError is returned for non-200 answers other than 429.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return "naver: unexpected status " + strconv.Itoa(e.Code) + ": " + e.Body
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
