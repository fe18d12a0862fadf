package summarizer

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
)

type anthropicSummarizer struct {
	client sdk.Client
	model  string
}

// NewAnthropic creates a summarizer backed by the Anthropic Messages API.
func NewAnthropic(cfg Config, opts ...anthropicopt.RequestOption) Summarizer {
	model := cfg.Model
	if model == "" {
		model = "claude-haiku-4-5-20251001"
	}
	opts = append([]anthropicopt.RequestOption{anthropicopt.WithAPIKey(cfg.Key)}, opts...)
	return &anthropicSummarizer{client: sdk.NewClient(opts...), model: model}
}

func (s *anthropicSummarizer) Provider() string { return "anthropic" }

func (s *anthropicSummarizer) Summarize(ctx context.Context, in Input) (*Summary, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	msg, err := s.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(s.model),
		MaxTokens: 800,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(userPrompt(in))),
		},
		Temperature: sdk.Float(0.2),
	})
	if err != nil {
		return nil, eris.Wrap(err, "summarizer: anthropic create message")
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return Parse(b.String())
}
