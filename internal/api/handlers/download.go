package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type DownloadHandler struct {
	client *http.Client
}

func NewDownloadHandler(timeout time.Duration) *DownloadHandler {
	return &DownloadHandler{
		client: &http.Client{Timeout: timeout},
	}
}

type downloadRequest struct {
	AudioURL string `json:"audio_url"`
}

// Download relays the synthesized audio to the caller. The remote body is
// streamed straight into the response; nothing touches the filesystem.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	var body downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.AudioURL == "" {
		writeDetail(w, http.StatusBadRequest, "Audio URL is required")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, body.AudioURL, nil)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid audio URL")
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			writeDetail(w, http.StatusGatewayTimeout, "Audio download timed out")
			return
		}
		slog.Error("audio download failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to download audio")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("audio download failed", "status", resp.StatusCode)
		writeDetail(w, http.StatusInternalServerError, "Failed to download audio")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="generated_audio.mp3"`)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, resp.Body); err != nil {
		// Headers are already sent; all we can do is log the truncation.
		slog.Warn("audio relay interrupted", "error", err)
	}
}
