package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/pupperhq/pupper-api/internal/domain"
	"github.com/pupperhq/pupper-api/internal/submission"
)

// defaultPageLimit is the page size when the client does not pass one.
const defaultPageLimit = 20

// DogHandler serves the listing routes.
type DogHandler struct {
	dogs     DogStore
	pipeline Submitter
	log      zerolog.Logger
}

func NewDogHandler(dogs DogStore, pipeline Submitter, log zerolog.Logger) *DogHandler {
	return &DogHandler{dogs: dogs, pipeline: pipeline, log: log}
}

// List serves GET /dogs: one scan page plus a continuation token when more
// results remain.
func (h *DogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultPageLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, h.log, err)
			return
		}
		limit = n
	}

	dogs, nextToken, err := h.dogs.List(ctx, int32(limit), r.URL.Query().Get("nextToken"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPageToken) {
			writeMessage(w, http.StatusBadRequest, "Invalid pagination token")
			return
		}
		writeError(w, h.log, err)
		return
	}

	resp := map[string]interface{}{"dogs": dogs}
	if nextToken != "" {
		resp["nextToken"] = nextToken
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetByID serves GET /dogs/{id}.
func (h *DogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	dog, err := h.dogs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if dog == nil {
		writeMessage(w, http.StatusNotFound, "Dog not found")
		return
	}
	writeJSON(w, http.StatusOK, dog)
}

// Create serves POST /dogs by delegating to the submission pipeline.
func (h *DogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req submission.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, h.log, err)
		return
	}

	dog, err := h.pipeline.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Dog created successfully",
		"id":      dog.ID,
	})
}
