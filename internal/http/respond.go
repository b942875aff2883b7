package httpserver

import (
	"encoding/json"
	"log"
	"net/http"

	"todoListManagement/models"
)

// writeJSON serializes v with the given status. Encoding failures after the
// header is sent can only be logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}

// writeError sends the standard {"error": msg} envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
