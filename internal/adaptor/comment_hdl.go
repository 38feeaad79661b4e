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

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// ListComments handles GET /api/titles/{titleID}/reviews/{reviewID}/comments (public)
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	if titleID == "" || reviewID == "" {
		utils.ResponseBadRequest(w, "Title ID and review ID are required", nil)
		return
	}

	comments, err := h.service.List(r.Context(), titleID, reviewID, paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}

// CreateComment handles POST /api/titles/{titleID}/reviews/{reviewID}/comments
// (protected). The author is always the authenticated user.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var req request.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.Create(r.Context(), titleID, reviewID, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "success", comment)
}

// GetComment handles GET /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID} (public)
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")
	if titleID == "" || reviewID == "" || commentID == "" {
		utils.ResponseBadRequest(w, "Title ID, review ID and comment ID are required", nil)
		return
	}

	comment, err := h.service.Get(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get comment")
		return
	}

	utils.ResponseSuccess(w, "success", comment)
}

// UpdateComment handles PATCH /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
// (protected, author or moderator)
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")
	if titleID == "" || reviewID == "" || commentID == "" {
		utils.ResponseBadRequest(w, "Title ID, review ID and comment ID are required", nil)
		return
	}

	var req request.CommentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.Update(r.Context(), titleID, reviewID, commentID, userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, "success", comment)
}

// DeleteComment handles DELETE /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}
// (protected, author or moderator)
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	titleID := chi.URLParam(r, "titleID")
	reviewID := chi.URLParam(r, "reviewID")
	commentID := chi.URLParam(r, "commentID")
	if titleID == "" || reviewID == "" || commentID == "" {
		utils.ResponseBadRequest(w, "Title ID, review ID and comment ID are required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), titleID, reviewID, commentID, userID); err != nil {
		handleServiceError(w, h.log, err, "delete comment")
		return
	}

	utils.ResponseNoContent(w)
}
