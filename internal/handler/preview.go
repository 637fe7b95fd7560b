package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// PreviewHandler serves POST /generate-preview.
type PreviewHandler struct {
	generator ImageGenerator
	log       zerolog.Logger
}

func NewPreviewHandler(generator ImageGenerator, log zerolog.Logger) *PreviewHandler {
	return &PreviewHandler{generator: generator, log: log}
}

type previewRequest struct {
	Description string `json:"description"`
}

// Generate synthesizes a preview image and returns it base64-encoded. A
// generation failure surfaces as a 500 carrying the underlying message.
func (h *PreviewHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, h.log, err)
		return
	}
	if req.Description == "" {
		writeMessage(w, http.StatusBadRequest, "No description provided")
		return
	}

	image, err := h.generator.Generate(r.Context(), req.Description)
	if err != nil {
		h.log.Error().Err(err).Msg("image generation failed")
		writeMessage(w, http.StatusInternalServerError, fmt.Sprintf("Generation failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image": image})
}
