package wire

import (
	"net/http"

	"review-catalog/internal/adaptor"
	"review-catalog/internal/data/repository"
	"review-catalog/internal/usecase"
	"review-catalog/pkg/mailer"
	"review-catalog/pkg/middleware"
	"review-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	signer *utils.ConfirmationSigner,
	logger *zap.Logger,
) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, mail, signer, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, config, logger)
	wireCategory(r, handler.Category, repo, config, logger)
	wireGenre(r, handler.Genre, repo, config, logger)
	wireTitle(r, handler.Title, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireComment(r, handler.Comment, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
