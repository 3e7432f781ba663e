package speech

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aifriendzone/voice-backend/internal/translate"
	"github.com/aifriendzone/voice-backend/internal/voices"
)

// Service runs the request pipeline: validate, decide translation, translate
// with fallback, synthesize, normalize. It holds no per-request state; the
// catalog is read-only, so concurrent use needs no locking.
type Service struct {
	catalog    *voices.Catalog
	translator translate.Translator
	synth      Synthesizer
}

func NewService(catalog *voices.Catalog, translator translate.Translator, synth Synthesizer) *Service {
	return &Service{
		catalog:    catalog,
		translator: translator,
		synth:      synth,
	}
}

// Generate handles one synthesis request end to end. Validation failures
// return before any outbound call; translation failures degrade to the
// original text; synthesis failures surface as SynthesisError.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, &ValidationError{Field: "text", Detail: "Text is required"}
	}

	profile, ok := s.catalog.Resolve(req.Voice)
	if !ok {
		return nil, &ValidationError{Field: "voice", Detail: fmt.Sprintf("Invalid voice: %s", req.Voice)}
	}
	if !profile.SupportsMood(req.Mood) {
		return nil, &ValidationError{Field: "mood", Detail: fmt.Sprintf("Mood %q not supported by voice %s", req.Mood, req.Voice)}
	}

	var outcome TranslationOutcome
	if d := decideTranslation(req, profile); d.mode != modeNone {
		outcome = s.translateWithFallback(ctx, req.Text, d.target)
	}

	finalText := req.Text
	if outcome.Attempted && outcome.Succeeded {
		finalText = outcome.TranslatedText
	}

	audioURL, err := s.synth.Synthesize(ctx, finalText, profile.VoiceID, req.Mood, req.Pitch)
	if err != nil {
		return nil, &SynthesisError{Err: err}
	}

	slog.Debug("audio generated",
		"voice", req.Voice,
		"translation_attempted", outcome.Attempted,
		"translation_succeeded", outcome.Succeeded,
	)

	result := normalize(req, profile, outcome, audioURL)
	return &result, nil
}
