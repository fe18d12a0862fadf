package summarizer

import (
	"context"

	"github.com/rotisserie/eris"
	openai "github.com/sashabaranov/go-openai"
)

type openAISummarizer struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates a summarizer backed by OpenAI chat completions in JSON mode.
func NewOpenAI(cfg Config) Summarizer {
	return newOpenAIWithConfig(openai.DefaultConfig(cfg.Key), cfg.Model)
}

func newOpenAIWithConfig(oc openai.ClientConfig, model string) *openAISummarizer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAISummarizer{client: openai.NewClientWithConfig(oc), model: model}
}

func (s *openAISummarizer) Provider() string { return "openai" }

func (s *openAISummarizer) Summarize(ctx context.Context, in Input) (*Summary, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(in)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, eris.Wrap(err, "summarizer: openai chat completion")
	}
	if len(resp.Choices) == 0 {
		return nil, eris.New("summarizer: openai returned no choices")
	}
	return Parse(resp.Choices[0].Message.Content)
}
