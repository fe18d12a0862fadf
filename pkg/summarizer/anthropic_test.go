package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/messages")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_1",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": "```json\n{\"summary\":\"야외 가든이 예뻐요\",\"keywords\":[\"가든\"],\"pros\":[],\"cons\":[\"주차\"],\"rating\":9}\n```"},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 10, "output_tokens": 5},
		})
	}))
	defer srv.Close()

	s := NewAnthropic(Config{Key: "test-key"}, anthropicopt.WithBaseURL(srv.URL), anthropicopt.WithMaxRetries(0))
	assert.Equal(t, "anthropic", s.Provider())

	out, err := s.Summarize(context.Background(), Input{Name: "더채플", Category: "hall", Reviews: []string{"가든이 예뻐요"}})
	require.NoError(t, err)
	assert.Equal(t, "야외 가든이 예뻐요", out.Summary)
	assert.Equal(t, []string{"주차"}, out.Cons)
	assert.Nil(t, out.Rating)
}
