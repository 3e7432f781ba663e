package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server    ServerConfig
	Murf      MurfConfig
	Translate TranslateConfig
	Download  DownloadConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type MurfConfig struct {
	APIKey  string
	BaseURL string // default: "https://api.murf.ai"
}

type TranslateConfig struct {
	Backend        string // "murf", "openai" or "anthropic"
	OpenAIKey      string
	OpenAIModel    string
	AnthropicKey   string
	AnthropicModel string
}

type DownloadConfig struct {
	TimeoutSeconds int
}

func Load() (*Config, error) {
	port, err := getEnvInt("PORT", 8000)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	downloadTimeout, err := getEnvInt("DOWNLOAD_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, fmt.Errorf("invalid DOWNLOAD_TIMEOUT_SECONDS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "localhost"),
			Port: port,
		},
		Murf: MurfConfig{
			APIKey:  getEnv("MURF_API_KEY", ""),
			BaseURL: getEnv("MURF_BASE_URL", ""),
		},
		Translate: TranslateConfig{
			Backend:        getEnv("TRANSLATE_BACKEND", "murf"),
			OpenAIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:    getEnv("TRANSLATE_OPENAI_MODEL", ""),
			AnthropicKey:   getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicModel: getEnv("TRANSLATE_ANTHROPIC_MODEL", ""),
		},
		Download: DownloadConfig{
			TimeoutSeconds: downloadTimeout,
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Validate reports missing required settings. A missing provider credential is
// a startup failure, not a per-request one.
func (c *Config) Validate() error {
	var missing []string
	if c.Murf.APIKey == "" {
		missing = append(missing, "MURF_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
