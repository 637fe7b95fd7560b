package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter wires the dispatch table. Every response, including 404s and
// recovered panics, passes through the CORS middleware; unmatched paths and
// methods both render the 404 envelope.
func NewRouter(dogs *DogHandler, interactions *InteractionHandler, preview *PreviewHandler, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(CORS)
	r.Use(Recover(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/dogs", dogs.List)
	r.Post("/dogs", dogs.Create)
	r.Get("/dogs/{id}", dogs.GetByID)
	r.Post("/interactions", interactions.Create)
	r.Get("/likes", interactions.Likes)
	r.Post("/generate-preview", preview.Generate)

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "Not found")
}
