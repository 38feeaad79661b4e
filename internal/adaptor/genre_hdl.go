package adaptor

import (
	"encoding/json"
	"net/http"

	"review-catalog/internal/dto/request"
	"review-catalog/internal/usecase"
	"review-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// ListGenres handles GET /api/genres (public)
func (h *GenreHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.List(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// CreateGenre handles POST /api/genres (admin)
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	genre, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "success", genre)
}

// GetGenre handles GET /api/genres/{slug} (public)
func (h *GenreHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	genre, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "get genre")
		return
	}

	utils.ResponseSuccess(w, "success", genre)
}

// UpdateGenre handles PUT /api/genres/{slug} (admin)
func (h *GenreHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	genre, err := h.service.UpdateBySlug(r.Context(), slug, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update genre")
		return
	}

	utils.ResponseSuccess(w, "success", genre)
}

// DeleteGenre handles DELETE /api/genres/{slug} (admin)
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		handleServiceError(w, h.log, err, "delete genre")
		return
	}

	utils.ResponseNoContent(w)
}
