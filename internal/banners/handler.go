package banners

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
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

const (
	listCacheKey   = "banners:all"
	maxUploadBytes = 10 << 20
)

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
	var imageName string
	var image io.Reader

	if isMultipart(r) {
		parsed, name, file, err := h.parseCreateForm(r)
		if err != nil {
			log.Warn("banners create: invalid form", slog.String("error", err.Error()))
			transport.WriteAppError(w, apperror.Invalid("invalid form", nil))
			return
		}
		if file != nil {
			defer file.Close()
			image = file
			imageName = name
		}
		req = parsed
	} else if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("banners create: invalid json")
		transport.WriteAppError(w, apperror.Invalid("invalid json", nil))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("banners create: validation error")
		transport.WriteAppError(w, apperror.Invalid("validation error", httpx.ValidationDetails(h.val.ValidationErrors(err))))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req, imageName, image)
	if err != nil {
		log.Error("banners create: failed", slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("banners create: ok", slog.String("banner_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if cached, ok, err := h.cache.Get(r.Context(), listCacheKey); err == nil && ok {
		log.Info("banners list: cache hit")
		transport.WriteCachedJSON(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("banners list: failed", slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	response := map[string]interface{}{
		"items": items,
	}
	if payload, err := json.Marshal(response); err == nil {
		_ = h.cache.Set(r.Context(), listCacheKey, payload, h.cacheTTL)
	}

	log.Info("banners list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		log.Warn("banners get: failed", slog.String("banner_id", id), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req UpdateRequest
	var imageName string
	var image io.Reader

	if isMultipart(r) {
		parsed, name, file, err := h.parseUpdateForm(r)
		if err != nil {
			log.Warn("banners update: invalid form", slog.String("error", err.Error()))
			transport.WriteAppError(w, apperror.Invalid("invalid form", nil))
			return
		}
		if file != nil {
			defer file.Close()
			image = file
			imageName = name
		}
		req = parsed
	} else if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("banners update: invalid json")
		transport.WriteAppError(w, apperror.Invalid("invalid json", nil))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("banners update: validation error")
		transport.WriteAppError(w, apperror.Invalid("validation error", httpx.ValidationDetails(h.val.ValidationErrors(err))))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req, imageName, image)
	if err != nil {
		log.Warn("banners update: failed", slog.String("banner_id", id), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("banners update: ok", slog.String("banner_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		log.Warn("banners delete: failed", slog.String("banner_id", id), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	_ = h.cache.Delete(r.Context(), listCacheKey)
	log.Info("banners delete: ok", slog.String("banner_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) parseCreateForm(r *http.Request) (CreateRequest, string, io.ReadCloser, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return CreateRequest{}, "", nil, err
	}

	req := CreateRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Link:        r.FormValue("link"),
	}
	if raw := strings.TrimSpace(r.FormValue("position")); raw != "" {
		position, err := strconv.Atoi(raw)
		if err != nil {
			return CreateRequest{}, "", nil, err
		}
		req.Position = position
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return req, "", nil, nil
	}
	if err != nil {
		return CreateRequest{}, "", nil, err
	}
	return req, header.Filename, file, nil
}

func (h *Handler) parseUpdateForm(r *http.Request) (UpdateRequest, string, io.ReadCloser, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return UpdateRequest{}, "", nil, err
	}

	var req UpdateRequest
	if v, ok := formValue(r, "title"); ok {
		req.Title = &v
	}
	if v, ok := formValue(r, "description"); ok {
		req.Description = &v
	}
	if v, ok := formValue(r, "link"); ok {
		req.Link = &v
	}
	if v, ok := formValue(r, "position"); ok {
		position, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return UpdateRequest{}, "", nil, err
		}
		req.Position = &position
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return req, "", nil, nil
	}
	if err != nil {
		return UpdateRequest{}, "", nil, err
	}
	return req, header.Filename, file, nil
}

func formValue(r *http.Request, key string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func isMultipart(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return ct == "multipart/form-data"
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
