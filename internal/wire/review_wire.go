package wire

import (
	"review-catalog/internal/adaptor"
	"review-catalog/internal/data/repository"
	"review-catalog/pkg/middleware"
	"review-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/titles/{titleID}/reviews - Browse reviews (public)
	r.Get("/api/titles/{titleID}/reviews", reviewHandler.ListReviews)

	// GET /api/titles/{titleID}/reviews/{reviewID} - View review (public)
	r.Get("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.GetReview)

	// ==================== PROTECTED ROUTES (require auth) ====================
	// The author-or-moderator check for updates and deletes lives in the
	// service; the middleware only establishes identity.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, repo.User, log))

		// POST /api/titles/{titleID}/reviews - Create review (one per user per title)
		r.Post("/api/titles/{titleID}/reviews", reviewHandler.CreateReview)

		// PATCH /api/titles/{titleID}/reviews/{reviewID} - Update review
		r.Patch("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.UpdateReview)

		// DELETE /api/titles/{titleID}/reviews/{reviewID} - Delete review
		r.Delete("/api/titles/{titleID}/reviews/{reviewID}", reviewHandler.DeleteReview)
	})
}
