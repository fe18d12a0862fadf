package summarizer

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rotisserie/eris"
	"google.golang.org/api/option"
)

type geminiSummarizer struct {
	client *genai.Client
	model  string
}

// NewGemini creates a summarizer backed by Gemini with a JSON response type.
func NewGemini(ctx context.Context, cfg Config) (Summarizer, error) {
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Key))
	if err != nil {
		return nil, eris.Wrap(err, "summarizer: create gemini client")
	}
	return &geminiSummarizer{client: client, model: model}, nil
}

func (s *geminiSummarizer) Provider() string { return "gemini" }

func (s *geminiSummarizer) Summarize(ctx context.Context, in Input) (*Summary, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	m := s.client.GenerativeModel(s.model)
	m.ResponseMIMEType = "application/json"
	m.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetMaxOutputTokens(800)

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt(in)))
	if err != nil {
		return nil, eris.Wrap(err, "summarizer: gemini generate content")
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, eris.New("summarizer: gemini returned no content")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return Parse(b.String())
}

func (s *geminiSummarizer) Close() error {
	return s.client.Close()
}
