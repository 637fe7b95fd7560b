package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pupperhq/pupper-api/internal/auth"
	"github.com/pupperhq/pupper-api/internal/domain"
)

// InteractionHandler serves the identity-required reaction routes.
type InteractionHandler struct {
	interactions InteractionStore
	dogs         DogStore
	log          zerolog.Logger
	now          func() time.Time
}

func NewInteractionHandler(interactions InteractionStore, dogs DogStore, log zerolog.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactions: interactions,
		dogs:         dogs,
		log:          log,
		now:          time.Now,
	}
}

type createInteractionRequest struct {
	DogID       string `json:"dogId"`
	Interaction string `json:"interaction"`
}

// Create serves POST /interactions: upserts the caller's current reaction to
// one listing. A later write for the same (user, dog) pair replaces the
// earlier one.
func (h *InteractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromHeader(r.Header)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, h.log, err)
		return
	}

	kind := domain.InteractionType(req.Interaction)
	if req.DogID == "" || !kind.Valid() {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	record := &domain.Interaction{
		UserID:      ident.Subject,
		DogID:       req.DogID,
		Interaction: kind,
		Timestamp:   h.now().UTC().Format(time.RFC3339),
	}
	if err := h.interactions.Put(r.Context(), record); err != nil {
		writeError(w, h.log, err)
		return
	}

	writeMessage(w, http.StatusOK, "Interaction recorded")
}

// Likes serves GET /likes: expands the caller's LIKE records into full
// listings. Listings that have since disappeared are skipped; no likes is an
// empty list, not a 404.
func (h *InteractionHandler) Likes(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromHeader(r.Header)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := r.Context()
	ids, err := h.interactions.LikedDogIDs(ctx, ident.Subject)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	liked := make([]domain.Dog, 0, len(ids))
	for _, id := range ids {
		dog, err := h.dogs.Get(ctx, id)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		if dog != nil {
			liked = append(liked, *dog)
		}
	}

	writeJSON(w, http.StatusOK, liked)
}
