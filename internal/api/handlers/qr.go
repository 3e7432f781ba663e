package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aifriendzone/voice-backend/internal/qr"
)

type QRHandler struct{}

func NewQRHandler() *QRHandler {
	return &QRHandler{}
}

type qrRequest struct {
	Data   string `json:"data"`
	Scale  int    `json:"scale"`
	Border int    `json:"border"`
}

// Encode renders a shareable link as a PNG QR code.
func (h *QRHandler) Encode(w http.ResponseWriter, r *http.Request) {
	var body qrRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if body.Scale == 0 {
		body.Scale = 4
	}
	if body.Border == 0 {
		body.Border = 2
	}

	png, err := qr.Encode(body.Data, body.Scale, body.Border)
	if err != nil {
		if errors.Is(err, qr.ErrEmptyData) {
			writeDetail(w, http.StatusBadRequest, "QR data is required")
			return
		}
		writeDetail(w, http.StatusInternalServerError, "Failed to encode QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
