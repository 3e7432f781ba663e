package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadStreamsAudio(t *testing.T) {
	audio := []byte("ID3\x04fake mp3 payload")
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(audio)
	}))
	defer remote.Close()

	h := NewDownloadHandler(5 * time.Second)
	body := fmt.Sprintf(`{"audio_url":%q}`, remote.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/download", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "generated_audio.mp3")
	assert.Equal(t, audio, rec.Body.Bytes())
}

func TestDownloadMissingURL(t *testing.T) {
	h := NewDownloadHandler(5 * time.Second)
	req := httptest.NewRequest(http.MethodPost, "/api/download", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Audio URL is required")
}

func TestDownloadRemoteErrorIs500(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer remote.Close()

	h := NewDownloadHandler(5 * time.Second)
	body := fmt.Sprintf(`{"audio_url":%q}`, remote.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/download", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to download audio")
}

func TestDownloadUnreachableRemoteIs500(t *testing.T) {
	h := NewDownloadHandler(2 * time.Second)
	req := httptest.NewRequest(http.MethodPost, "/api/download",
		strings.NewReader(`{"audio_url":"http://127.0.0.1:1/audio.mp3"}`))
	rec := httptest.NewRecorder()
	h.Download(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
