package response

import (
	"encoding/json"
	"net/http"
)

// Body is the JSON envelope for message-shaped responses; validation
// failures add the failing field. Payload-shaped responses (the listing, the
// single-record fetch) are written as-is via OK.
type Body struct {
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(Body{Message: "Failed to encode response"})
	}
}

// Success responses
func OK(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

func Message(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Body{Message: message})
}

func Created(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusCreated, Body{Message: message})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Body{Message: message})
}

func ValidationFailed(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, Body{Message: message, Field: field})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Body{Message: message})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Body{Message: message})
}
