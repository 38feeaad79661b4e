package wire

import (
	"review-catalog/internal/adaptor"
	"review-catalog/internal/data/repository"
	"review-catalog/pkg/middleware"
	"review-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireComment(
	r chi.Router,
	commentHandler *adaptor.CommentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/titles/{titleID}/reviews/{reviewID}/comments - Browse comments (public)
	r.Get("/api/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.ListComments)

	// GET /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID} - View comment (public)
	r.Get("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.GetComment)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, repo.User, log))

		// POST /api/titles/{titleID}/reviews/{reviewID}/comments - Create comment
		r.Post("/api/titles/{titleID}/reviews/{reviewID}/comments", commentHandler.CreateComment)

		// PATCH /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID} - Update comment
		r.Patch("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.UpdateComment)

		// DELETE /api/titles/{titleID}/reviews/{reviewID}/comments/{commentID} - Delete comment
		r.Delete("/api/titles/{titleID}/reviews/{reviewID}/comments/{commentID}", commentHandler.DeleteComment)
	})
}
