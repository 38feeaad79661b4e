package wire

import (
	"review-catalog/internal/adaptor"
	"review-catalog/internal/data/repository"
	"review-catalog/pkg/middleware"
	"review-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTitle(
	r chi.Router,
	titleHandler *adaptor.TitleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/titles - Browse titles (public)
	r.Get("/api/titles", titleHandler.ListTitles)

	// GET /api/titles/{id} - View title with rating (public)
	r.Get("/api/titles/{id}", titleHandler.GetTitle)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireAdmin(repo.User, log))

		// POST /api/titles - Create title
		r.Post("/api/titles", titleHandler.CreateTitle)

		// PUT/PATCH /api/titles/{id} - Update title (partial body allowed)
		r.Put("/api/titles/{id}", titleHandler.UpdateTitle)
		r.Patch("/api/titles/{id}", titleHandler.UpdateTitle)

		// DELETE /api/titles/{id} - Delete title (reviews cascade)
		r.Delete("/api/titles/{id}", titleHandler.DeleteTitle)
	})
}
