// Package translate abstracts the machine-translation capability behind a
// backend registry, so the orchestrator does not care whether the provider's
// own translation endpoint or an LLM does the work.
package translate

import (
	"context"
	"fmt"

	"github.com/aifriendzone/voice-backend/internal/config"
	"github.com/aifriendzone/voice-backend/internal/murf"
)

// Translation is one translated item. TranslatedText is a pointer so a
// response item that lacks the field decodes as absent, not empty.
type Translation struct {
	TranslatedText *string `json:"translated_text"`
}

// Response is the decoded translation payload shared by all backends.
type Response struct {
	Translations []Translation `json:"translations"`
}

// Status classifies the shape of a decoded response so callers can match it
// exhaustively instead of probing fields.
type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusMissingField
)

// First extracts the first translated string along with the shape it was
// found in.
func (r *Response) First() (string, Status) {
	if r == nil || len(r.Translations) == 0 {
		return "", StatusEmpty
	}
	first := r.Translations[0]
	if first.TranslatedText == nil {
		return "", StatusMissingField
	}
	return *first.TranslatedText, StatusOK
}

// Translator is the contract a translation backend fulfils. Implementations
// make exactly one remote call per invocation; retry policy belongs to the
// caller (and there is none).
type Translator interface {
	Translate(ctx context.Context, targetLanguage string, texts []string) (*Response, error)
	Name() string
}

// New selects the configured backend. Backends are registered only when their
// credentials are present; picking an unregistered backend is a startup error.
func New(cfg config.TranslateConfig, murfClient *murf.Client) (Translator, error) {
	backends := map[string]Translator{
		"murf": NewMurfTranslator(murfClient),
	}
	if cfg.OpenAIKey != "" {
		backends["openai"] = NewOpenAITranslator(cfg.OpenAIKey, cfg.OpenAIModel)
	}
	if cfg.AnthropicKey != "" {
		backends["anthropic"] = NewAnthropicTranslator(cfg.AnthropicKey, cfg.AnthropicModel)
	}

	name := cfg.Backend
	if name == "" {
		name = "murf"
	}
	t, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("translate backend %q not configured", name)
	}
	return t, nil
}
