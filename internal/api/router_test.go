package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aifriendzone/voice-backend/internal/config"
)

// fakeMurf serves the two provider endpoints the generate flow touches.
type fakeMurf struct {
	translateCalls atomic.Int64
	translateBody  string // raw JSON returned by the translate endpoint
}

func (f *fakeMurf) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/text/translate", func(w http.ResponseWriter, r *http.Request) {
		f.translateCalls.Add(1)
		w.Write([]byte(f.translateBody))
	})
	mux.HandleFunc("/v1/speech/generate", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"audio_file":"https://cdn.example.com/out.mp3"}`))
	})
	return mux
}

func newTestServer(t *testing.T, fake *fakeMurf) *httptest.Server {
	t.Helper()
	provider := httptest.NewServer(fake.handler())
	t.Cleanup(provider.Close)

	cfg := &config.Config{
		Murf:      config.MurfConfig{APIKey: "mk-test", BaseURL: provider.URL},
		Translate: config.TranslateConfig{Backend: "murf"},
		Download:  config.DownloadConfig{TimeoutSeconds: 5},
	}
	rt, err := NewRouter(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(rt.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func postGenerate(t *testing.T, srv *httptest.Server, body map[string]interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/generate", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestGenerateAutoModeEndToEnd(t *testing.T) {
	fake := &fakeMurf{translateBody: `{"translations":[{"translated_text":"सुप्रभात!"}]}`}
	srv := newTestServer(t, fake)

	resp, payload := postGenerate(t, srv, map[string]interface{}{
		"text":  "Good morning!",
		"voice": "Shweta",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), fake.translateCalls.Load())
	assert.Equal(t, "सुप्रभात!", payload["final_text"])
	assert.Equal(t, "Good morning!", payload["original_text"])
	assert.Equal(t, "https://cdn.example.com/out.mp3", payload["audio_url"])
}

func TestGenerateMalformedTranslationDegrades(t *testing.T) {
	fake := &fakeMurf{translateBody: `{"unexpected":"shape"}`}
	srv := newTestServer(t, fake)

	resp, payload := postGenerate(t, srv, map[string]interface{}{
		"text":  "Good morning!",
		"voice": "Shaan",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, payload["original_text"], payload["final_text"])
	assert.Equal(t, true, payload["success"])
}

func TestGenerateEmptyTextIs400(t *testing.T) {
	srv := newTestServer(t, &fakeMurf{translateBody: `{}`})

	resp, payload := postGenerate(t, srv, map[string]interface{}{"text": "   "})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Text is required", payload["detail"])
}

func TestVoicesEndpoint(t *testing.T) {
	srv := newTestServer(t, &fakeMurf{translateBody: `{}`})

	resp, err := http.Get(srv.URL + "/api/voices")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, true, payload["success"])
}
