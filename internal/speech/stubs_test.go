package speech

import (
	"context"

	"github.com/aifriendzone/voice-backend/internal/translate"
)

type translateCall struct {
	target string
	texts  []string
}

type stubTranslator struct {
	resp  *translate.Response
	err   error
	calls []translateCall
}

func (s *stubTranslator) Name() string { return "stub" }

func (s *stubTranslator) Translate(ctx context.Context, targetLanguage string, texts []string) (*translate.Response, error) {
	s.calls = append(s.calls, translateCall{target: targetLanguage, texts: texts})
	return s.resp, s.err
}

type synthCall struct {
	text    string
	voiceID string
	style   string
	pitch   int
}

type stubSynth struct {
	url   string
	err   error
	calls []synthCall
}

func (s *stubSynth) Synthesize(ctx context.Context, text, voiceID, style string, pitch int) (string, error) {
	s.calls = append(s.calls, synthCall{text: text, voiceID: voiceID, style: style, pitch: pitch})
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func translated(texts ...string) *translate.Response {
	resp := &translate.Response{}
	for _, t := range texts {
		text := t
		resp.Translations = append(resp.Translations, translate.Translation{TranslatedText: &text})
	}
	return resp
}
