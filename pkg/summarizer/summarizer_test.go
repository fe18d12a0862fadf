package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFencedAnswer(t *testing.T) {
	answer := "Here you go:\n```json\n" + `{
		"summary": "친절한 상담과 다양한 드레스 라인업이 장점입니다.",
		"keywords": ["친절", "라인업", "친절", "가봉", "피팅", "실크", "비즈"],
		"pros": ["상담이 꼼꼼함", " "],
		"cons": ["주말 예약이 어려움"],
		"rating": 4.27
	}` + "\n```"

	s, err := Parse(answer)
	require.NoError(t, err)
	assert.Equal(t, "친절한 상담과 다양한 드레스 라인업이 장점입니다.", s.Summary)
	assert.Equal(t, []string{"친절", "라인업", "가봉", "피팅", "실크"}, s.Keywords)
	assert.Equal(t, []string{"상담이 꼼꼼함"}, s.Pros)
	assert.Equal(t, []string{"주말 예약이 어려움"}, s.Cons)
	require.NotNil(t, s.Rating)
	assert.Equal(t, 4.3, *s.Rating)
}

func TestParseDropsOutOfRangeRating(t *testing.T) {
	for _, answer := range []string{
		`{"summary": "ok", "rating": 7}`,
		`{"summary": "ok", "rating": -1}`,
		`{"summary": "ok"}`,
	} {
		s, err := Parse(answer)
		require.NoError(t, err)
		assert.Nil(t, s.Rating, answer)
	}
}

func TestParseBraceInsideString(t *testing.T) {
	s, err := Parse(`{"summary": "a } b", "keywords": []} trailing`)
	require.NoError(t, err)
	assert.Equal(t, "a } b", s.Summary)
}

func TestParseRejects(t *testing.T) {
	for _, answer := range []string{
		"",
		"I cannot help with that.",
		`{"summary": "", "keywords": []}`,
		`{"summary": 3}`,
	} {
		_, err := Parse(answer)
		assert.Error(t, err, answer)
	}
}

func TestUserPromptBounded(t *testing.T) {
	long := strings.Repeat("가", maxPromptRunes)
	prompt := userPrompt(Input{Name: "n", Category: "dress", Reviews: []string{"짧은 후기", long, "", "마지막"}})
	assert.Contains(t, prompt, "1. 짧은 후기")
	assert.NotContains(t, prompt, long)
	assert.Contains(t, prompt, "4. 마지막")
}

func TestValidateRequiresReviews(t *testing.T) {
	assert.ErrorIs(t, validate(Input{Reviews: []string{" ", ""}}), ErrNoReviews)
	assert.NoError(t, validate(Input{Reviews: []string{"좋아요"}}))
}

func TestNewUnsupportedProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "llama"})
	assert.Error(t, err)

	s, err := New(context.Background(), Config{Provider: "OpenAI", Key: "k"})
	require.NoError(t, err)
	assert.Equal(t, "openai", s.Provider())
}
