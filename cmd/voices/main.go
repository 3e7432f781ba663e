// Command voices lists the provider's Hindi voices with their ids and
// available moods, for keeping the catalog table up to date.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aifriendzone/voice-backend/internal/config"
	"github.com/aifriendzone/voice-backend/internal/murf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	client := murf.NewClient(murf.Config{APIKey: cfg.Murf.APIKey, BaseURL: cfg.Murf.BaseURL})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	all, err := client.ListVoices(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to list voices:", err)
		os.Exit(1)
	}

	var hindi []murf.Voice
	for _, v := range all {
		if strings.Contains(v.VoiceID, "hi-IN") {
			hindi = append(hindi, v)
		}
	}

	fmt.Println("\n=== AVAILABLE HINDI VOICES ===")
	fmt.Printf("Found %d Hindi voices:\n\n", len(hindi))
	for _, v := range hindi {
		fmt.Printf("Voice: %s\n", v.DisplayName)
		fmt.Printf("ID: %s\n", v.VoiceID)
		fmt.Printf("Available Moods: %s\n", strings.Join(v.AvailableStyles, ", "))
		fmt.Println(strings.Repeat("-", 50))
	}
}
