package usecase

import (
	"context"
	"fmt"
	"time"

	"review-catalog/internal/data/entity"
	"review-catalog/internal/data/repository"
	"review-catalog/internal/dto/request"
	"review-catalog/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	// Admin surface, users addressed by username
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteByUsername(ctx context.Context, username string) error

	// Own profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.userRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) Create(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// Check email already registered
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	// Check username already taken
	existing, err = s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	role := entity.RoleUser
	if req.Role != "" {
		if !entity.ValidRole(req.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
		}
		role = entity.UserRole(req.Role)
	}

	// Admin-created accounts skip email confirmation
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
		IsActive:  true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateByUsername(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.applyProfileChanges(ctx, user, req.Email, req.Username, req.FirstName, req.LastName, req.Bio); err != nil {
		return nil, err
	}

	if req.Role != nil {
		if !entity.ValidRole(*req.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
		}
		user.Role = entity.UserRole(*req.Role)
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("update user: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteByUsername(ctx context.Context, username string) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("username", username))
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted", zap.String("username", username))
	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID.String())
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID.String())
	}

	// Role stays whatever it currently is; the profile surface has no say
	if err := s.applyProfileChanges(ctx, user, req.Email, req.Username, req.FirstName, req.LastName, req.Bio); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *userService) findUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, username)
	}
	return user, nil
}

func (s *userService) applyProfileChanges(ctx context.Context, user *entity.User, email, username, firstName, lastName, bio *string) error {
	if email != nil && *email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return ErrEmailTaken
		}
		user.Email = *email
	}

	if username != nil && *username != user.Username {
		existing, err := s.userRepo.FindByUsername(ctx, *username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if existing != nil {
			return ErrUsernameTaken
		}
		user.Username = *username
	}

	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if bio != nil {
		user.Bio = *bio
	}

	return nil
}
