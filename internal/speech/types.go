// Package speech orchestrates a text-to-speech request: it decides whether to
// translate, absorbs translation failures, invokes the synthesis provider and
// assembles the stable result contract.
package speech

import "context"

// Request is one incoming synthesis request. Immutable after construction.
type Request struct {
	Text           string
	Voice          string
	Mood           string
	Pitch          int
	Translate      bool
	TargetLanguage string
}

// TranslationOutcome records what happened to the translation step. It is
// produced once per request and consumed by the normalizer; on any failure
// TranslatedText falls back to the original text so downstream steps always
// have usable input.
type TranslationOutcome struct {
	Attempted      bool
	Succeeded      bool
	TranslatedText string
	FailureReason  string
}

// Result is the contract returned to the caller. Field names are fixed;
// clients are built against them.
type Result struct {
	Success            bool    `json:"success"`
	AudioURL           string  `json:"audio_url"`
	OriginalText       string  `json:"original_text"`
	TranslatedText     *string `json:"translated_text"`
	FinalText          string  `json:"final_text"`
	VoiceLanguage      string  `json:"voice_language"`
	TranslationEnabled bool    `json:"translation_enabled"`
	TargetLanguage     *string `json:"target_language"`
	Message            string  `json:"message"`
}

// Synthesizer produces an audio locator for the given text. The murf client
// satisfies this.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID, style string, pitch int) (string, error)
}
