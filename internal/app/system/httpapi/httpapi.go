// Package httpapi holds the small JSON response helpers shared by every
// feature handler.
package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the uniform error payload: { "error": "..." }.
type errorBody struct {
	Error string `json:"error"`
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}

// Internal logs err and answers 500 with its message. Store and I/O
// failures surface through here.
func Internal(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	log.Error(op, zap.Error(err))
	Error(w, http.StatusInternalServerError, err.Error())
}

// Decode reads the request body into dst. A false return means the caller
// should stop: a 400 has already been written.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
