package wire

import (
	"review-catalog/internal/adaptor"
	"review-catalog/internal/data/repository"
	"review-catalog/pkg/middleware"
	"review-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(
	r chi.Router,
	genreHandler *adaptor.GenreHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/genres - Browse genres (public)
	r.Get("/api/genres", genreHandler.ListGenres)

	// GET /api/genres/{slug} - View genre (public)
	r.Get("/api/genres/{slug}", genreHandler.GetGenre)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireAdmin(repo.User, log))

		// POST /api/genres - Create genre
		r.Post("/api/genres", genreHandler.CreateGenre)

		// PUT /api/genres/{slug} - Update genre
		r.Put("/api/genres/{slug}", genreHandler.UpdateGenre)

		// DELETE /api/genres/{slug} - Delete genre
		r.Delete("/api/genres/{slug}", genreHandler.DeleteGenre)
	})
}
