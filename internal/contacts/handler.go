package contacts

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/httpx"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/middleware"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/transport"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contacts create: invalid json")
		transport.WriteAppError(w, apperror.Invalid("invalid json", nil))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contacts create: validation error")
		transport.WriteAppError(w, apperror.Invalid("validation error", httpx.ValidationDetails(h.val.ValidationErrors(err))))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("contacts create: failed", slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	log.Info("contacts create: ok", slog.String("contact_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx)
	if err != nil {
		log.Warn("contacts get: failed", slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contacts update: invalid json")
		transport.WriteAppError(w, apperror.Invalid("invalid json", nil))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contacts update: validation error")
		transport.WriteAppError(w, apperror.Invalid("validation error", httpx.ValidationDetails(h.val.ValidationErrors(err))))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		log.Warn("contacts update: failed", slog.String("contact_id", id), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	log.Info("contacts update: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		log.Warn("contacts delete: failed", slog.String("contact_id", id), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	log.Info("contacts delete: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
