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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /api/titles/{titleID}/reviews (public)
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	reviews, err := h.service.List(r.Context(), titleID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// CreateReview handles POST /api/titles/{titleID}/reviews (protected). The
// author is always the authenticated user.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID := chi.URLParam(r, "titleID")
	if titleID == "" {
		utils.ResponseBadRequest(w, "Title ID is required", nil)
		return
	}

	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.Create(r.Context(), titleID, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetReview handles GET /api/titles/{titleID}/reviews/{reviewID} (public)
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	if titleID == "" || reviewID == "" {
		utils.ResponseBadRequest(w, "Title ID and review ID are required", nil)
		return
	}

	review, err := h.service.Get(r.Context(), titleID, reviewID)
	if err != nil {
		handleServiceError(w, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// UpdateReview handles PATCH /api/titles/{titleID}/reviews/{reviewID}
// (protected, author or moderator)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	if titleID == "" || reviewID == "" {
		utils.ResponseBadRequest(w, "Title ID and review ID are required", nil)
		return
	}

	var req request.ReviewUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.Update(r.Context(), titleID, reviewID, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// DeleteReview handles DELETE /api/titles/{titleID}/reviews/{reviewID}
// (protected, author or moderator)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	if titleID == "" || reviewID == "" {
		utils.ResponseBadRequest(w, "Title ID and review ID are required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), titleID, reviewID, userID); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}
