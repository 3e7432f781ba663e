package speech

import "github.com/aifriendzone/voice-backend/internal/voices"

// normalize assembles the result contract. It is the sole writer of the
// final-text invariant: final text equals the translated text exactly when
// translation was attempted and succeeded, otherwise the original text.
// Pure and idempotent.
func normalize(req Request, profile voices.Profile, outcome TranslationOutcome, audioURL string) Result {
	finalText := req.Text
	var translated *string
	if outcome.Attempted && outcome.Succeeded {
		text := outcome.TranslatedText
		translated = &text
		finalText = text
	}

	var target *string
	if req.TargetLanguage != "" {
		text := req.TargetLanguage
		target = &text
	}

	return Result{
		Success:            true,
		AudioURL:           audioURL,
		OriginalText:       req.Text,
		TranslatedText:     translated,
		FinalText:          finalText,
		VoiceLanguage:      profile.Language,
		TranslationEnabled: req.Translate,
		TargetLanguage:     target,
		Message:            "Audio generated successfully",
	}
}
