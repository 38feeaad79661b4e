package adaptor

import (
	"encoding/json"
	"net/http"

	"review-catalog/internal/dto/request"
	"review-catalog/internal/usecase"
	"review-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Signup handles POST /api/auth/email (public)
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "signup")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// IssueToken handles POST /api/auth/token (public)
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.IssueToken(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "issue token")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}
