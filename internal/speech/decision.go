package speech

import "github.com/aifriendzone/voice-backend/internal/voices"

type translationMode int

const (
	modeNone translationMode = iota
	modeManual
	modeAuto
)

type decision struct {
	mode   translationMode
	target string
}

// decideTranslation picks the translation path before any network call.
// First matching rule wins: an explicit translate flag with a target language
// (manual), then the auto path for voices marked with an auto-translate
// target when the input looks English.
func decideTranslation(req Request, profile voices.Profile) decision {
	if req.Translate && req.TargetLanguage != "" {
		return decision{mode: modeManual, target: req.TargetLanguage}
	}
	if target, ok := profile.AutoTranslateTarget(); ok && isASCII(req.Text) {
		return decision{mode: modeAuto, target: target}
	}
	return decision{mode: modeNone}
}

// isASCII treats any code point above 7-bit ASCII as "not English". Known
// rough edge: English text with typographic punctuation (curly quotes,
// em dashes) is misclassified and skips auto translation.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
