package adaptor

import (
	"errors"
	"net/http"

	"review-catalog/internal/dto/request"
	"review-catalog/internal/usecase"
	"review-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Category *CategoryHandler
	Genre    *GenreHandler
	Title    *TitleHandler
	Review   *ReviewHandler
	Comment  *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Category: NewCategoryHandler(service.Category, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Title:    NewTitleHandler(service.Title, log),
		Review:   NewReviewHandler(service.Review, log),
		Comment:  NewCommentHandler(service.Comment, log),
	}
}

// handleServiceError maps service sentinel errors to HTTP statuses. Anything
// unexpected is logged and hidden behind a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrPermissionDenied):
		log.Warn(operation+" failed - permission denied",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// paginationFromQuery reads page/per_page query parameters with defaults.
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
