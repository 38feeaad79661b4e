package wire

import (
	"review-catalog/internal/adaptor"
	"review-catalog/internal/data/repository"
	"review-catalog/pkg/middleware"
	"review-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (own profile) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, repo.User, log))

		// GET /api/users/me - View own profile
		r.Get("/api/users/me", userHandler.GetMe)

		// PATCH /api/users/me - Update own profile (role cannot change)
		r.Patch("/api/users/me", userHandler.UpdateMe)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, repo.User, log))
		r.Use(middleware.RequireAdmin(repo.User, log))

		// GET /api/users - List users
		r.Get("/api/users", userHandler.ListUsers)

		// POST /api/users - Create user (skips email confirmation)
		r.Post("/api/users", userHandler.CreateUser)

		// GET /api/users/{username} - View user
		r.Get("/api/users/{username}", userHandler.GetUser)

		// PATCH /api/users/{username} - Update user (role included)
		r.Patch("/api/users/{username}", userHandler.UpdateUser)

		// DELETE /api/users/{username} - Delete user
		r.Delete("/api/users/{username}", userHandler.DeleteUser)
	})
}
