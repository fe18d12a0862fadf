package naver

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	base := []Option{WithBaseURL(srv.URL), WithLimiter(rate.NewLimiter(rate.Inf, 1))}
	return NewClient("id", "secret", append(base, opts...)...)
}

func TestLocalSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/local.json", r.URL.Path)
		assert.Equal(t, "서울 웨딩드레스", r.URL.Query().Get("query"))
		assert.Equal(t, "5", r.URL.Query().Get("display"))
		assert.Equal(t, "id", r.Header.Get("X-Naver-Client-Id"))
		assert.Equal(t, "secret", r.Header.Get("X-Naver-Client-Secret"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"total": 2,
			"items": [
				{"title": "<b>청담</b> 드레스", "address": "서울 강남구 청담동 1", "roadAddress": "서울 강남구 도산대로 1",
				 "telephone": "02-000-0000", "mapx": "1270473000", "mapy": "375240000"},
				{"title": "드레스 하우스", "mapx": 1270000000, "mapy": 375000000, "extra": {"nested": true}}
			]
		}`)
	})

	resp, err := c.LocalSearch(context.Background(), "서울 웨딩드레스", 20)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "<b>청담</b> 드레스", resp.Items[0].Title)
	assert.Equal(t, "서울 강남구 도산대로 1", resp.Items[0].RoadAddress)
	assert.Equal(t, "1270473000", resp.Items[0].MapX)
	assert.Equal(t, "1270000000", resp.Items[1].MapX)
	assert.Empty(t, resp.Items[1].Address)
}

func TestLocalSearchEmptyItems(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"total": 0, "items": []}`)
	})

	resp, err := c.LocalSearch(context.Background(), "q", 5)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestLocalSearchMalformed(t *testing.T) {
	for name, body := range map[string]string{
		"not json":      `<html>oops</html>`,
		"missing items": `{"total": 3}`,
		"items object":  `{"items": {"title": "x"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, body)
			})
			_, err := c.LocalSearch(context.Background(), "q", 5)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestRateLimitedByProvider(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"errorCode":"012"}`)
	})

	_, err := c.BlogSearch(context.Background(), "q", 10)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestRateLimitedLocallySkipsRequest(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = io.WriteString(w, `{"items": []}`)
	}, WithLimiter(rate.NewLimiter(0, 0)))

	_, err := c.LocalSearch(context.Background(), "q", 5)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Zero(t, calls)
}

func TestUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.LocalSearch(context.Background(), "q", 5)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
}

func TestMissingCredentials(t *testing.T) {
	c := NewClient("", "")
	_, err := c.LocalSearch(context.Background(), "q", 5)
	assert.Error(t, err)
}

func TestBlogSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blog.json", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("display"))
		_, _ = io.WriteString(w, `{"items": [
			{"title": "드레스 투어 <b>후기</b>", "link": "https://blog.naver.com/a/1",
			 "description": "가봉 &amp; 피팅", "bloggername": "신부A", "postdate": "20240512"}
		]}`)
	})

	resp, err := c.BlogSearch(context.Background(), "청담 드레스 웨딩 후기", 10)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "신부A", resp.Items[0].BloggerName)
	assert.Equal(t, "20240512", resp.Items[0].PostDate)
}
