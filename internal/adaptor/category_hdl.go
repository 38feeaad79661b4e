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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// ListCategories handles GET /api/categories (public)
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// CreateCategory handles POST /api/categories (admin)
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "success", category)
}

// GetCategory handles GET /api/categories/{slug} (public)
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	category, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "success", category)
}

// UpdateCategory handles PUT /api/categories/{slug} (admin)
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	category, err := h.service.UpdateBySlug(r.Context(), slug, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "success", category)
}

// DeleteCategory handles DELETE /api/categories/{slug} (admin)
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Slug is required", nil)
		return
	}

	if err := h.service.DeleteBySlug(r.Context(), slug); err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseNoContent(w)
}
