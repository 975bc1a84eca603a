package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
)

func TestWriteAppErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperror.Invalid("validation error", map[string]string{"name": "required"}), http.StatusBadRequest},
		{apperror.NotFound("customer not found"), http.StatusNotFound},
		{apperror.Internal(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteAppError(rec, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %s", ct)
		}
	}
}

func TestWriteAppErrorValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, apperror.Invalid("validation error", map[string]string{"score": "max"}))

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "validation error" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
	if body.Details["score"] != "max" {
		t.Fatalf("expected field detail, got %v", body.Details)
	}
}

func TestWriteAppErrorInternalPassesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAppError(rec, apperror.Internal(errors.New("connection reset")))

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "connection reset" {
		t.Fatalf("expected underlying message, got %q", body.Error)
	}
}
