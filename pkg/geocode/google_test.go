package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoogle(t *testing.T, h http.HandlerFunc) Geocoder {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGoogle("test-key", WithBaseURL(srv.URL), WithLimiter(newTestLimiter()))
}

func TestGoogleGeocode_Rooftop(t *testing.T) {
	g := newTestGoogle(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "서울 강남구 도산대로 1", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"results": [{
				"geometry": {
					"location": {"lat": 37.524, "lng": 127.0473},
					"location_type": "ROOFTOP"
				}
			}]
		}`)
	})

	result, err := g.Geocode(context.Background(), "서울 강남구 도산대로 1")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.InDelta(t, 37.524, result.Point.Lat(), 0.0001)
	assert.InDelta(t, 127.0473, result.Point.Lon(), 0.0001)
	assert.Equal(t, "ROOFTOP", result.Quality)
}

func TestGoogleGeocode_NoResults(t *testing.T) {
	g := newTestGoogle(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status": "ZERO_RESULTS", "results": []}`)
	})

	result, err := g.Geocode(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestGoogleGeocode_DeniedIsError(t *testing.T) {
	g := newTestGoogle(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status": "REQUEST_DENIED", "results": []}`)
	})

	_, err := g.Geocode(context.Background(), "서울")
	assert.Error(t, err)
}

func TestGoogleGeocode_HTTPError(t *testing.T) {
	g := newTestGoogle(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := g.Geocode(context.Background(), "서울")
	assert.Error(t, err)
}

func TestGoogleGeocode_NoKey(t *testing.T) {
	_, err := NewGoogle("").Geocode(context.Background(), "서울")
	assert.Error(t, err)
}
