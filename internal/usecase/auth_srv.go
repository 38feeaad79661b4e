package usecase

import (
	"context"
	"fmt"
	"time"

	"review-catalog/internal/data/entity"
	"review-catalog/internal/data/repository"
	"review-catalog/internal/dto/request"
	"review-catalog/internal/dto/response"
	"review-catalog/pkg/mailer"
	"review-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	// Signup creates an inactive account and mails a confirmation code.
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	// IssueToken exchanges a valid confirmation code for an access token
	// and activates the account.
	IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	signer *utils.ConfirmationSigner
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	signer *utils.ConfirmationSigner,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		signer: signer,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	// The username is always derived from the email, deterministically.
	// A client-supplied username is ignored, matching the public contract.
	username := utils.DeriveUsername(req.Email)

	// Check email already registered
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	// Check derived username collision
	existingUser, err = s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUsernameTaken
	}

	// Create inactive user; activation happens on token exchange
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      entity.RoleUser,
		IsActive:  false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Code is bound to the inactive state, so it dies with activation
	code := s.signer.MakeToken(user.ID.String(), user.Email, user.IsActive)

	// Send confirmation code email (async, fire and forget)
	go s.sendConfirmationCode(user.Email, code)

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("username", user.Username))

	return &response.SignupResponse{
		Message: fmt.Sprintf("Confirmation code sent to %s", user.Email),
	}, nil
}

func (s *authService) IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	// Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for token exchange", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user with email %s", ErrNotFound, req.Email)
	}

	// Verify against the user's current state; any bound-field change since
	// issue (including a prior activation) makes the code invalid
	if !s.signer.CheckToken(req.ConfirmationCode, user.ID.String(), user.Email, user.IsActive) {
		s.log.Warn("Invalid confirmation code", zap.String("email", req.Email))
		return nil, ErrInvalidCode
	}

	// Activate user
	if !user.IsActive {
		user.IsActive = true
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to activate user", zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("activate user: %w", err)
		}
	}

	// Issue access token
	expiry := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, err := utils.GenerateAccessToken(
		s.config.JWT.Secret,
		user.ID.String(),
		user.Username,
		string(user.Role),
		expiry,
	)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	s.log.Info("Access token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.TokenResponse{Token: token}, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) sendConfirmationCode(email, code string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	subject := "Registration confirmation"
	body := fmt.Sprintf("Confirmation code: %s", code)

	if err := s.mail.Send(ctx, email, subject, body); err != nil {
		s.log.Error("Failed to send confirmation code", zap.Error(err), zap.String("email", email))
	}
}
