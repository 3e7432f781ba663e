package translate

import (
	"context"

	"github.com/aifriendzone/voice-backend/internal/murf"
)

// MurfTranslator uses the speech provider's own translation endpoint.
type MurfTranslator struct {
	client *murf.Client
}

func NewMurfTranslator(client *murf.Client) *MurfTranslator {
	return &MurfTranslator{client: client}
}

func (t *MurfTranslator) Name() string { return "murf" }

func (t *MurfTranslator) Translate(ctx context.Context, targetLanguage string, texts []string) (*Response, error) {
	resp, err := t.client.TranslateTexts(ctx, targetLanguage, texts)
	if err != nil {
		return nil, err
	}

	out := make([]Translation, len(resp.Translations))
	for i, tr := range resp.Translations {
		out[i] = Translation{TranslatedText: tr.TranslatedText}
	}
	return &Response{Translations: out}, nil
}
