package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pupperhq/pupper-api/internal/apperrors"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError converts any error into the response envelope. Typed errors keep
// their status and message, a breed rejection carries its labels, and
// everything else becomes a 500 with the raw error text in the body.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var rejection *apperrors.BreedRejection
	if errors.As(err, &rejection) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"message":        apperrors.BreedRejectionMessage,
			"detectedLabels": rejection.Labels,
		})
		return
	}

	var app *apperrors.AppError
	if errors.As(err, &app) {
		if app.Status >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("request failed")
		}
		writeMessage(w, app.Status, app.Message)
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	writeMessage(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", err))
}
