package discounts

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
		log.Warn("discounts create: invalid json")
		transport.WriteAppError(w, apperror.Invalid("invalid json", nil))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("discounts create: validation error")
		transport.WriteAppError(w, apperror.Invalid("validation error", httpx.ValidationDetails(h.val.ValidationErrors(err))))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("discounts create: failed", slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	log.Info("discounts create: ok", slog.String("product_id", item.ProductID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("discounts list: failed", slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	log.Info("discounts list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *Handler) GetByProduct(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetByProduct(ctx, productID)
	if err != nil {
		log.Warn("discounts get: failed", slog.String("product_id", productID), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) UpdateByProduct(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("discounts update: invalid json")
		transport.WriteAppError(w, apperror.Invalid("invalid json", nil))
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("discounts update: validation error")
		transport.WriteAppError(w, apperror.Invalid("validation error", httpx.ValidationDetails(h.val.ValidationErrors(err))))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.UpdateByProduct(ctx, productID, req)
	if err != nil {
		log.Warn("discounts update: failed", slog.String("product_id", productID), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	log.Info("discounts update: ok", slog.String("product_id", productID))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteByProduct(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	productID, ok := h.productIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteByProduct(ctx, productID); err != nil {
		log.Warn("discounts delete: failed", slog.String("product_id", productID), slog.String("error", err.Error()))
		transport.WriteAppError(w, err)
		return
	}

	log.Info("discounts delete: ok", slog.String("product_id", productID))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// productIDParam rejects malformed product ids at the route boundary, before
// any store access.
func (h *Handler) productIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	productID := strings.TrimSpace(chi.URLParam(r, "productId"))
	if !validation.IsObjectID(productID) {
		h.logWithRequest(r).Warn("discounts: invalid productId", slog.String("product_id", productID))
		transport.WriteAppError(w, apperror.Invalid("invalid productId", nil))
		return "", false
	}
	return productID, true
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
