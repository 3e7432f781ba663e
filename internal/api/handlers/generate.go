package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aifriendzone/voice-backend/internal/speech"
)

// Generator is what the handler needs from the orchestrator.
type Generator interface {
	Generate(ctx context.Context, req speech.Request) (*speech.Result, error)
}

type GenerateHandler struct {
	svc Generator
}

func NewGenerateHandler(svc Generator) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

type generateRequest struct {
	Text           string `json:"text"`
	Voice          string `json:"voice"`
	Mood           string `json:"mood"`
	Pitch          int    `json:"pitch"`
	Translate      bool   `json:"translate"`
	TargetLanguage string `json:"target_language"`
}

// Generate converts text to speech, translating first when requested or when
// auto mode applies.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Voice == "" {
		body.Voice = "Shaan"
	}
	if body.Mood == "" {
		body.Mood = "Conversational"
	}

	result, err := h.svc.Generate(r.Context(), speech.Request{
		Text:           body.Text,
		Voice:          body.Voice,
		Mood:           body.Mood,
		Pitch:          body.Pitch,
		Translate:      body.Translate,
		TargetLanguage: body.TargetLanguage,
	})
	if err != nil {
		var verr *speech.ValidationError
		switch {
		case errors.As(err, &verr):
			writeDetail(w, http.StatusBadRequest, verr.Detail)
		case errors.Is(err, context.DeadlineExceeded):
			writeDetail(w, http.StatusGatewayTimeout, "Audio generation timed out")
		default:
			slog.Error("audio generation failed", "voice", body.Voice, "error", err)
			writeDetail(w, http.StatusInternalServerError, "Failed to generate audio")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
