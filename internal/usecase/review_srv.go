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

type ReviewService interface {
	List(ctx context.Context, titleID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	// Create takes the author from the authenticated identity; one review
	// per (title, author).
	Create(ctx context.Context, titleID string, authorID uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error)
	Get(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error)
	// Update and Delete require the requester to be the review's author or
	// a moderator. Admin alone does not qualify.
	Update(ctx context.Context, titleID, reviewID string, userID uuid.UUID, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, titleID, reviewID string, userID uuid.UUID) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) List(ctx context.Context, titleID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByTitleID(ctx, title.ID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.repo.Review.CountByTitleID(ctx, title.ID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

func (s *reviewService) Create(ctx context.Context, titleID string, authorID uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	// Pre-check; the unique index backs this up under concurrency
	existing, err := s.repo.Review.FindByTitleAndAuthor(ctx, title.ID, authorID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TitleID:  title.ID,
		AuthorID: authorID,
		Text:     req.Text,
		Score:    req.Score,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("title_id", titleID),
			zap.String("author_id", authorID.String()),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", titleID),
		zap.String("author_id", authorID.String()),
		zap.Int("score", req.Score),
	)

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, authorID))
	return &resp, nil
}

func (s *reviewService) Get(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, titleID, reviewID string, userID uuid.UUID, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCanEdit(ctx, review.AuthorID, userID); err != nil {
		return nil, err
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("update review: %w", err)
	}

	resp := response.ReviewToResponse(review, s.authorUsername(ctx, review.AuthorID))
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, titleID, reviewID string, userID uuid.UUID) error {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return err
	}

	if err := s.checkCanEdit(ctx, review.AuthorID, userID); err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("%w: title %s", ErrNotFound, titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("%w: title %s", ErrNotFound, titleID)
	}

	return title, nil
}

// findReview resolves the review and checks it belongs to the title in the
// request path.
func (s *reviewService) findReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}

	return review, nil
}

// checkCanEdit enforces the author-or-moderator rule. Admins get no special
// treatment here.
func (s *reviewService) checkCanEdit(ctx context.Context, authorID, userID uuid.UUID) error {
	if authorID == userID {
		return nil
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find requester: %w", err)
	}
	if user == nil || !user.IsModerator() {
		return ErrPermissionDenied
	}

	return nil
}

func (s *reviewService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
