package middleware

import (
	"net/http"
	"strings"

	"review-catalog/internal/data/repository"
	"review-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthJWT validates the Bearer access token and loads the user behind it.
// Deleted or not yet activated accounts are rejected even with a token that
// still verifies.
func AuthJWT(secret string, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseAccessToken(secret, parts[1])
			if err != nil {
				logger.Warn("Invalid access token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("Malformed token subject", zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for token",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsActive {
				logger.Warn("Token for missing or inactive user", zap.String("user_id", userID.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// The role in the context comes from the database, not the token,
			// so a role change takes effect on the next request
			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route to admins. Superusers and staff count as admin
// regardless of their role field.
func RequireAdmin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsAdminUser() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
