package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string, details map[string]string) {
	WriteJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// WriteCachedJSON replays a payload that was already encoded on a previous
// request, skipping re-serialization.
func WriteCachedJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// WriteAppError is the sole place that maps error kinds to status codes.
// Handlers forward service errors here unmodified.
func WriteAppError(w http.ResponseWriter, err error) {
	var ae *apperror.Error
	if !errors.As(err, &ae) {
		WriteError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	switch ae.Kind {
	case apperror.KindInvalid:
		WriteError(w, http.StatusBadRequest, ae.Message, ae.Details)
	case apperror.KindNotFound:
		WriteError(w, http.StatusNotFound, ae.Message, nil)
	default:
		WriteError(w, http.StatusInternalServerError, ae.Error(), nil)
	}
}
