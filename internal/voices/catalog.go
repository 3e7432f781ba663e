// Package voices holds the static catalog mapping human-facing voice names to
// provider voice ids, supported moods and spoken language.
package voices

// Profile describes a single voice. The autoTranslate target, when set, makes
// the orchestrator translate English-looking input to the voice's language; it
// is deliberately not serialized so the /api/voices shape stays stable.
type Profile struct {
	VoiceID  string   `json:"voice_id"`
	Moods    []string `json:"moods"`
	Language string   `json:"language"`

	autoTranslate string
}

// NewProfile builds a Profile. autoTranslate may be empty to disable the
// auto-translate path for the voice.
func NewProfile(voiceID string, moods []string, language, autoTranslate string) Profile {
	return Profile{
		VoiceID:       voiceID,
		Moods:         moods,
		Language:      language,
		autoTranslate: autoTranslate,
	}
}

// SupportsMood reports whether the voice can deliver the given mood.
func (p Profile) SupportsMood(mood string) bool {
	for _, m := range p.Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// AutoTranslateTarget returns the language auto mode should translate to, if
// the voice is marked for it.
func (p Profile) AutoTranslateTarget() (string, bool) {
	return p.autoTranslate, p.autoTranslate != ""
}

// Catalog is an immutable voice table, loaded once and safe for concurrent
// reads. A voice missing from it fails the request, never the process.
type Catalog struct {
	profiles map[string]Profile
}

func NewCatalog() *Catalog {
	return &Catalog{profiles: map[string]Profile{
		"Shaan":  NewProfile("hi-IN-shaan", []string{"Conversational", "Promo", "Calm", "Sad"}, "hi-IN", "hi-IN"),
		"Rahul":  NewProfile("hi-IN-rahul", []string{"Conversational"}, "hi-IN", "hi-IN"),
		"Shweta": NewProfile("hi-IN-shweta", []string{"Conversational", "Promo", "Calm", "Sad"}, "hi-IN", "hi-IN"),
		"Amit":   NewProfile("hi-IN-amit", []string{"Conversational"}, "hi-IN", "hi-IN"),
		"Kabir":  NewProfile("hi-IN-kabir", []string{"Conversational"}, "hi-IN", "hi-IN"),
		"Ayushi": NewProfile("hi-IN-ayushi", []string{"Conversational"}, "hi-IN", "hi-IN"),
	}}
}

// Resolve looks up a voice by its display name.
func (c *Catalog) Resolve(name string) (Profile, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

// All returns the full table for enumeration endpoints.
func (c *Catalog) All() map[string]Profile {
	return c.profiles
}
