package handler

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// corsHeaders is the fixed header set every response carries.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,Authorization,X-Amz-Date,X-Api-Key,X-Amz-Security-Token",
	"Access-Control-Allow-Methods": "OPTIONS,GET,POST,DELETE",
}

// CORS stamps the fixed header set on every response and short-circuits
// pre-flight requests with an empty 200 on any path.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range corsHeaders {
			w.Header().Set(k, v)
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Recover converts panics anywhere in dispatch into the 500 envelope so
// nothing propagates past the router as an unhandled fault.
func Recover(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("recovered from panic")
					writeMessage(w, http.StatusInternalServerError, fmt.Sprintf("Error: %v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
