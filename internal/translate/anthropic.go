package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicTranslator translates via the messages API.
type AnthropicTranslator struct {
	client anthropic.Client
	model  string
}

func NewAnthropicTranslator(apiKey, model string) *AnthropicTranslator {
	if model == "" {
		model = "claude-3-haiku-20240307"
	}
	return &AnthropicTranslator{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (t *AnthropicTranslator) Name() string { return "anthropic" }

func (t *AnthropicTranslator) Translate(ctx context.Context, targetLanguage string, texts []string) (*Response, error) {
	out := make([]Translation, 0, len(texts))
	for _, text := range texts {
		resp, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(t.model),
			MaxTokens: 1024,
			System: []anthropic.TextBlockParam{
				{Text: translationPrompt(targetLanguage)},
			},
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("anthropic translate: %w", err)
		}

		content := ""
		for _, block := range resp.Content {
			if block.Type == "text" {
				content += block.Text
			}
		}
		if content == "" {
			out = append(out, Translation{})
			continue
		}
		translated := strings.TrimSpace(content)
		out = append(out, Translation{TranslatedText: &translated})
	}
	return &Response{Translations: out}, nil
}
