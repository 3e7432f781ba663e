package handlers

import (
	"net/http"

	"github.com/aifriendzone/voice-backend/internal/voices"
)

type VoicesHandler struct {
	catalog *voices.Catalog
}

func NewVoicesHandler(catalog *voices.Catalog) *VoicesHandler {
	return &VoicesHandler{catalog: catalog}
}

// List returns the available voices and their moods.
func (h *VoicesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"voices":  h.catalog.All(),
	})
}
