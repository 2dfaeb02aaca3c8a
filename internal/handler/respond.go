package handler

import (
	"encoding/json"
	"net/http"

	"github.com/waritphon/devconnect-api/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

type fieldErrorsResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

func respondFieldErrors(w http.ResponseWriter, fieldErrs []validation.FieldError) {
	respondJSON(w, http.StatusBadRequest, fieldErrorsResponse{Errors: fieldErrs})
}

// respondInternal hides internal detail from the client; the caller is
// expected to have logged the underlying error already.
func respondInternal(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, "something went wrong")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
