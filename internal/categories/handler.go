package categories

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/apperror"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/cache"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/httpx"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/middleware"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/transport"
	"github.com/DUDISoftware/Pc-Services-Backend-sub001/internal/validation"
)

const listCacheKey = "categories:all"

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, c cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("categories create: invalid json")
		transport.WriteAppError(w, apperror.Invalid("invalid json", nil))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("categories create: validation error")
		transport.WriteAppError(w, apperror.Invalid("validation error", httpx.ValidationDetails(h.val.ValidationErrors(err))))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("categories create: failed", slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("categories create: ok", slog.String("category_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if cached, ok, err := h.cache.Get(r.Context(), listCacheKey); err == nil && ok {
		log.Info("categories list: cache hit")
		transport.WriteCachedJSON(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("categories list: failed", slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	response := map[string]interface{}{
		"items": items,
	}
	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(r.Context(), listCacheKey, payload, h.cacheTTL)
	}

	log.Info("categories list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		log.Warn("categories get: failed", slog.String("category_id", id), slog.String("error", err.Error()))
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
		log.Warn("categories update: invalid json")
		transport.WriteAppError(w, apperror.Invalid("invalid json", nil))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("categories update: validation error")
		transport.WriteAppError(w, apperror.Invalid("validation error", httpx.ValidationDetails(h.val.ValidationErrors(err))))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		log.Warn("categories update: failed", slog.String("category_id", id), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("categories update: ok", slog.String("category_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	detached, err := h.service.Delete(ctx, id)
	if err != nil {
		log.Warn("categories delete: failed", slog.String("category_id", id), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("categories delete: ok", slog.String("category_id", id), slog.Int64("products_detached", detached))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "deleted",
		"products_detached": detached,
	})
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
