// Package summarizer turns review snippets into a structured synopsis using
// one of the supported chat model providers.
package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

const maxKeywords = 5

// maxPromptRunes bounds the review text sent to the model.
const maxPromptRunes = 6000

var ErrNoReviews = eris.New("summarizer: no reviews to summarize")

// Input is the review corpus of one venue or vendor.
type Input struct {
	Name     string
	Category string
	Reviews  []string
}

// Summary is the parsed model answer. Rating is nil when the model gave none
// or gave a value outside 0..5.
type Summary struct {
	Summary  string
	Keywords []string
	Pros     []string
	Cons     []string
	Rating   *float64
}

type Summarizer interface {
	Summarize(ctx context.Context, in Input) (*Summary, error)
	Provider() string
}

// Config selects and configures a provider.
type Config struct {
	Provider string
	Key      string
	Model    string
}

// New builds the summarizer named by cfg.Provider.
func New(ctx context.Context, cfg Config) (Summarizer, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAI(cfg), nil
	case "gemini":
		return NewGemini(ctx, cfg)
	case "anthropic":
		return NewAnthropic(cfg), nil
	default:
		return nil, eris.Errorf("summarizer: unsupported provider %q", cfg.Provider)
	}
}

const systemPrompt = `You summarize Korean wedding vendor reviews for couples.
Return JSON only, no markdown, matching exactly:
{"summary": "2-3 sentences in Korean", "keywords": ["up to 5 short Korean keywords"],
 "pros": ["..."], "cons": ["..."], "rating": 0.0}
rating is your estimate from 0 to 5 based only on the reviews. Use empty lists when
the reviews say nothing about pros or cons. Never invent facts absent from the reviews.`

func userPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vendor: %s\nCategory: %s\nReviews:\n", in.Name, in.Category)
	used := 0
	for i, r := range in.Reviews {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		n := len([]rune(r))
		if used+n > maxPromptRunes {
			continue
		}
		used += n
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}

func validate(in Input) error {
	for _, r := range in.Reviews {
		if strings.TrimSpace(r) != "" {
			return nil
		}
	}
	return ErrNoReviews
}

type rawSummary struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
	Pros     []string `json:"pros"`
	Cons     []string `json:"cons"`
	Rating   *float64 `json:"rating"`
}

// Parse extracts a Summary from a model answer, tolerating markdown fences
// and prose around the JSON object.
func Parse(content string) (*Summary, error) {
	content = cleanJSONResponse(content)
	var raw rawSummary
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, eris.Wrap(err, "summarizer: parse model answer")
	}

	s := &Summary{
		Summary:  strings.TrimSpace(raw.Summary),
		Keywords: compact(raw.Keywords),
		Pros:     compact(raw.Pros),
		Cons:     compact(raw.Cons),
	}
	if len(s.Keywords) > maxKeywords {
		s.Keywords = s.Keywords[:maxKeywords]
	}
	if raw.Rating != nil && !math.IsNaN(*raw.Rating) && *raw.Rating >= 0 && *raw.Rating <= 5 {
		r := math.Round(*raw.Rating*10) / 10
		s.Rating = &r
	}
	if s.Summary == "" && len(s.Keywords) == 0 && len(s.Pros) == 0 && len(s.Cons) == 0 {
		return nil, eris.New("summarizer: empty model answer")
	}
	return s, nil
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// cleanJSONResponse removes markdown formatting and any text around the
// outermost JSON object.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	if end := findMatchingBrace(response, start); end != -1 {
		return response[start : end+1]
	}
	return response[start:]
}

// findMatchingBrace finds the closing brace of the object opened at start,
// skipping braces inside strings.
func findMatchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
