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

type TitleHandler struct {
	service usecase.TitleService
	log     *zap.Logger
}

func NewTitleHandler(service usecase.TitleService, log *zap.Logger) *TitleHandler {
	return &TitleHandler{
		service: service,
		log:     log.With(zap.String("handler", "title")),
	}
}

// ListTitles handles GET /api/titles (public)
func (h *TitleHandler) ListTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.service.List(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list titles")
		return
	}

	utils.ResponseSuccess(w, "success", titles)
}

// CreateTitle handles POST /api/titles (admin)
func (h *TitleHandler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var req request.TitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	title, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create title")
		return
	}

	utils.ResponseCreated(w, "success", title)
}

// GetTitle handles GET /api/titles/{id} (public)
func (h *TitleHandler) GetTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "id")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	title, err := h.service.Get(r.Context(), titleID)
	if err != nil {
		handleServiceError(w, h.log, err, "get title")
		return
	}

	utils.ResponseSuccess(w, "success", title)
}

// UpdateTitle handles PUT and PATCH /api/titles/{id} (admin)
func (h *TitleHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "id")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	var req request.TitleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	title, err := h.service.Update(r.Context(), titleID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update title")
		return
	}

	utils.ResponseSuccess(w, "success", title)
}

// DeleteTitle handles DELETE /api/titles/{id} (admin)
func (h *TitleHandler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "id")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), titleID); err != nil {
		handleServiceError(w, h.log, err, "delete title")
		return
	}

	utils.ResponseNoContent(w)
}
