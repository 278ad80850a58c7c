package utils

import (
	"encoding/json"
	"net/http"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// RespondWithStoreError reports a persistence failure the way the API
// contract requires: a generic message plus the underlying error text.
func RespondWithStoreError(w http.ResponseWriter, msg string, err error) {
	RespondWithJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   msg,
		"details": err.Error(),
	})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// SendResponse wraps data in the {success,data,message} envelope used by
// every mutating trip endpoint.
func SendResponse(w http.ResponseWriter, status int, data any, message string) {
	resp := map[string]any{
		"success": true,
		"message": message,
	}
	if data != nil {
		resp["data"] = data
	}
	RespondWithJSON(w, status, resp)
}

type M map[string]interface{}
