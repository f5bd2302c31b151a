package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lehmann314159/flashdeck/internal/models"
	"github.com/lehmann314159/flashdeck/internal/services"
)

// Handler contains the JSON API handlers
type Handler struct {
	svc *services.FlashcardService
	log *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(svc *services.FlashcardService, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse carries field validation messages
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// parseID reads the {id} path parameter as an integer
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// ListFlashcards handles GET /api/v1/flashcards
func (h *Handler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parsePage(q.Get("page"))

	filter := models.FlashcardFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Page:     page,
		PageSize: models.DefaultPageSize,
	}

	cards, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.log.Error("failed to list flashcards", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list flashcards")
		return
	}

	total, err := h.svc.Count(r.Context(), filter)
	if err != nil {
		h.log.Error("failed to count flashcards", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to count flashcards")
		return
	}

	pg := services.NewPagination(total, models.DefaultPageSize, page)

	response := map[string]interface{}{
		"flashcards":  cards,
		"total":       total,
		"page":        pg.CurrentPage,
		"total_pages": pg.TotalPages,
	}

	if cards == nil {
		response["flashcards"] = []interface{}{}
	}

	writeJSON(w, http.StatusOK, response)
}

// GetFlashcard handles GET /api/v1/flashcards/{id}
func (h *Handler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard ID")
		return
	}

	card, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "flashcard not found")
			return
		}
		h.log.Error("failed to get flashcard", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to get flashcard")
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// CreateFlashcard handles POST /api/v1/flashcards
func (h *Handler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	var input models.FlashcardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := services.ValidateFlashcard(input.Front, input.Back, input.Category); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Errors: errs})
		return
	}

	card, err := h.svc.Create(r.Context(), &input)
	if err != nil {
		h.log.Error("failed to create flashcard", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create flashcard")
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// UpdateFlashcard handles PUT /api/v1/flashcards/{id}. Updating an ID
// that matches no row succeeds silently, mirroring the web surface.
func (h *Handler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard ID")
		return
	}

	var input models.FlashcardInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := services.ValidateFlashcard(input.Front, input.Back, input.Category); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Errors: errs})
		return
	}

	card, err := h.svc.Update(r.Context(), id, &input)
	if err != nil {
		h.log.Error("failed to update flashcard", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update flashcard")
		return
	}

	writeJSON(w, http.StatusOK, card)
}

// DeleteFlashcard handles DELETE /api/v1/flashcards/{id}. Deletion is
// idempotent: a missing ID still answers 204.
func (h *Handler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid flashcard ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.log.Error("failed to delete flashcard", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete flashcard")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
