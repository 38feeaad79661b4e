package wire

import (
	"review-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/email - Request a confirmation code
	r.Post("/api/auth/email", authHandler.Signup)

	// POST /api/auth/token - Exchange the code for an access token
	r.Post("/api/auth/token", authHandler.IssueToken)
}
