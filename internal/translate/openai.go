package translate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITranslator translates via chat completions.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

func NewOpenAITranslator(apiKey, model string) *OpenAITranslator {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAITranslator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (t *OpenAITranslator) Name() string { return "openai" }

func (t *OpenAITranslator) Translate(ctx context.Context, targetLanguage string, texts []string) (*Response, error) {
	out := make([]Translation, 0, len(texts))
	for _, text := range texts {
		resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: t.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: translationPrompt(targetLanguage)},
				{Role: openai.ChatMessageRoleUser, Content: text},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("openai translate: %w", err)
		}
		if len(resp.Choices) == 0 {
			out = append(out, Translation{})
			continue
		}
		translated := strings.TrimSpace(resp.Choices[0].Message.Content)
		out = append(out, Translation{TranslatedText: &translated})
	}
	return &Response{Translations: out}, nil
}

func translationPrompt(targetLanguage string) string {
	return fmt.Sprintf("Translate the user's text to %s. Reply with the translation only, no commentary.", targetLanguage)
}
