package speech

import (
	"context"
	"log/slog"

	"github.com/aifriendzone/voice-backend/internal/translate"
)

// Failure reasons recorded on a degraded translation outcome.
const (
	reasonEmptyResponse  = "empty-response"
	reasonMissingField   = "missing-field"
	reasonTransportError = "transport-error"
)

// translateWithFallback makes exactly one translation attempt and never
// fails: every provider error or unusable response shape degrades to the
// original text, so translation can never abort the request.
func (s *Service) translateWithFallback(ctx context.Context, text, targetLanguage string) TranslationOutcome {
	resp, err := s.translator.Translate(ctx, targetLanguage, []string{text})
	if err != nil {
		slog.Warn("translation failed, using original text",
			"backend", s.translator.Name(),
			"target_language", targetLanguage,
			"error", err,
		)
		return TranslationOutcome{
			Attempted:      true,
			TranslatedText: text,
			FailureReason:  reasonTransportError,
		}
	}

	translated, status := resp.First()
	switch status {
	case translate.StatusOK:
		return TranslationOutcome{
			Attempted:      true,
			Succeeded:      true,
			TranslatedText: translated,
		}
	case translate.StatusEmpty:
		return s.degraded(text, targetLanguage, reasonEmptyResponse)
	case translate.StatusMissingField:
		return s.degraded(text, targetLanguage, reasonMissingField)
	default:
		return s.degraded(text, targetLanguage, reasonEmptyResponse)
	}
}

func (s *Service) degraded(text, targetLanguage, reason string) TranslationOutcome {
	slog.Warn("translation response unusable, using original text",
		"backend", s.translator.Name(),
		"target_language", targetLanguage,
		"reason", reason,
	)
	return TranslationOutcome{
		Attempted:      true,
		TranslatedText: text,
		FailureReason:  reason,
	}
}
