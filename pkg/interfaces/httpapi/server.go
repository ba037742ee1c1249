package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pantry/pkg/application/services"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	service *services.PantryService
	logger  *zap.Logger
}

// New constructs a Handler.
func New(service *services.PantryService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/health", h.health)

	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.insertProduct)
		r.Post("/{name}/consume", h.consumeProduct)
		r.Get("/{name}/history", h.productHistory)
	})

	r.Get("/status", h.status)
	r.Get("/history", h.history)
	r.Post("/expirations/check", h.checkExpirations)
	r.Get("/shopping-list", h.shoppingList)

	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type insertRequest struct {
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	ExpirationDate string          `json:"expiration_date"`
}

func (h *Handler) insertProduct(w http.ResponseWriter, r *http.Request) {
	var req insertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.InsertProduct(req.Name, req.Quantity, req.ExpirationDate); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"result": "inserted"})
}

type consumeRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

func (h *Handler) consumeProduct(w http.ResponseWriter, r *http.Request) {
	var req consumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.service.ConsumeProduct(name, req.Quantity); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"result": "consumed"})
}

func (h *Handler) productHistory(w http.ResponseWriter, r *http.Request) {
	entries := h.service.ProductHistory(chi.URLParam(r, "name"))
	respondJSON(w, http.StatusOK, map[string]any{"actions": entries})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.service.Status()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"products": statuses})
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"actions": h.service.History()})
}

type expirationsRequest struct {
	ReferenceDate string `json:"reference_date"`
}

func (h *Handler) checkExpirations(w http.ResponseWriter, r *http.Request) {
	var req expirationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ReferenceDate == "" {
		respondError(w, http.StatusBadRequest, "reference_date is required")
		return
	}

	removed, err := h.service.CheckExpirations(req.ReferenceDate)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"removed": removed})
}

func (h *Handler) shoppingList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"suggestions": h.service.ShoppingList()})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInsufficientQuantity):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
