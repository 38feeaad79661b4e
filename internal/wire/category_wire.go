package wire

import (
	"review-catalog/internal/adaptor"
	"review-catalog/internal/data/repository"
	"review-catalog/pkg/middleware"
	"review-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/categories - Browse categories (public)
	r.Get("/api/categories", categoryHandler.ListCategories)

	// GET /api/categories/{slug} - View category (public)
	r.Get("/api/categories/{slug}", categoryHandler.GetCategory)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireAdmin(repo.User, log))

		// POST /api/categories - Create category
		r.Post("/api/categories", categoryHandler.CreateCategory)

		// PUT /api/categories/{slug} - Update category
		r.Put("/api/categories/{slug}", categoryHandler.UpdateCategory)

		// DELETE /api/categories/{slug} - Delete category
		r.Delete("/api/categories/{slug}", categoryHandler.DeleteCategory)
	})
}
