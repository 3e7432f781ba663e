// Package murf is a thin REST client for the Murf speech platform: speech
// generation, text translation and voice enumeration.
package murf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fixed output parameters of the system; not user-configurable.
const (
	audioFormat = "MP3"
	sampleRate  = 48000.0
	channelType = "STEREO"
)

// ErrNoAudioFile is returned when a generate response carries no audio
// locator; that is a failure, not an empty success.
var ErrNoAudioFile = errors.New("murf: response carried no audio file")

// Config holds client settings.
type Config struct {
	APIKey  string
	BaseURL string // default: "https://api.murf.ai"
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a Client with sensible defaults applied.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.murf.ai"
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GenerateRequest is the speech generation payload.
type GenerateRequest struct {
	Text        string  `json:"text"`
	VoiceID     string  `json:"voice_id"`
	Style       string  `json:"style,omitempty"`
	Pitch       int     `json:"pitch"`
	Format      string  `json:"format"`
	SampleRate  float64 `json:"sample_rate"`
	ChannelType string  `json:"channel_type"`
}

// GenerateResponse is the decoded generate payload. AudioFile is a pointer so
// an absent field is distinguishable from an empty one.
type GenerateResponse struct {
	AudioFile *string `json:"audio_file"`
}

// GenerateSpeech calls the speech generation endpoint and decodes the raw
// response without interpreting it.
func (c *Client) GenerateSpeech(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	var resp GenerateResponse
	if err := c.post(ctx, "/v1/speech/generate", req, &resp); err != nil {
		return nil, fmt.Errorf("generate speech: %w", err)
	}
	return &resp, nil
}

// Synthesize generates speech with the system's fixed output parameters and
// returns the audio locator URI.
func (c *Client) Synthesize(ctx context.Context, text, voiceID, style string, pitch int) (string, error) {
	resp, err := c.GenerateSpeech(ctx, GenerateRequest{
		Text:        text,
		VoiceID:     voiceID,
		Style:       style,
		Pitch:       pitch,
		Format:      audioFormat,
		SampleRate:  sampleRate,
		ChannelType: channelType,
	})
	if err != nil {
		return "", err
	}
	if resp.AudioFile == nil || *resp.AudioFile == "" {
		return "", ErrNoAudioFile
	}
	return *resp.AudioFile, nil
}

// TranslateRequest is the translation payload; texts is a batch.
type TranslateRequest struct {
	TargetLanguage string   `json:"target_language"`
	Texts          []string `json:"texts"`
}

// TranslateResponse is the decoded translation payload. Both the container
// and the per-item text may be absent; callers decide what that means.
type TranslateResponse struct {
	Translations []Translation `json:"translations"`
}

type Translation struct {
	TranslatedText *string `json:"translated_text"`
}

// TranslateTexts calls the text translation endpoint with a batch of texts.
func (c *Client) TranslateTexts(ctx context.Context, targetLanguage string, texts []string) (*TranslateResponse, error) {
	req := TranslateRequest{TargetLanguage: targetLanguage, Texts: texts}
	var resp TranslateResponse
	if err := c.post(ctx, "/v1/text/translate", req, &resp); err != nil {
		return nil, fmt.Errorf("translate texts: %w", err)
	}
	return &resp, nil
}

// Voice is one entry of the provider's voice enumeration.
type Voice struct {
	DisplayName     string   `json:"display_name"`
	VoiceID         string   `json:"voice_id"`
	AvailableStyles []string `json:"available_styles"`
}

// ListVoices enumerates the provider's voices.
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/v1/speech/voices", nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list voices failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var voices []Voice
	if err := json.NewDecoder(resp.Body).Decode(&voices); err != nil {
		return nil, fmt.Errorf("decode voices: %w", err)
	}
	return voices, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
