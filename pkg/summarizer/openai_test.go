package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAISummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "청담 드레스")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": `{"summary":"가봉이 꼼꼼해요","keywords":["가봉"],"pros":["친절"],"cons":[],"rating":4.5}`,
				},
			}},
		})
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	s := newOpenAIWithConfig(cfg, "")

	out, err := s.Summarize(context.Background(), Input{Name: "청담 드레스", Category: "dress", Reviews: []string{"가봉이 꼼꼼해요"}})
	require.NoError(t, err)
	assert.Equal(t, "가봉이 꼼꼼해요", out.Summary)
	assert.Equal(t, []string{"친절"}, out.Pros)
	assert.Empty(t, out.Cons)
}

func TestOpenAISummarizeNoReviews(t *testing.T) {
	s := newOpenAIWithConfig(openai.DefaultConfig("k"), "")
	_, err := s.Summarize(context.Background(), Input{Name: "x"})
	assert.ErrorIs(t, err, ErrNoReviews)
}

func TestOpenAISummarizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	_, err := newOpenAIWithConfig(cfg, "").Summarize(context.Background(), Input{Name: "x", Reviews: []string{"r"}})
	assert.Error(t, err)
}
