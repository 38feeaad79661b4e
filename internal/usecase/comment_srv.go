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

type CommentService interface {
	List(ctx context.Context, titleID, reviewID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	Create(ctx context.Context, titleID, reviewID string, authorID uuid.UUID, req *request.CommentRequest) (*response.CommentResponse, error)
	Get(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error)
	Update(ctx context.Context, titleID, reviewID, commentID string, userID uuid.UUID, req *request.CommentUpdateRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, titleID, reviewID, commentID string, userID uuid.UUID) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) List(ctx context.Context, titleID, reviewID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, review.ID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, review.ID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		commentResponses[i] = response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	}

	return response.NewPaginatedResponse(commentResponses, req.Page, req.PerPage, total), nil
}

func (s *commentService) Create(ctx context.Context, titleID, reviewID string, authorID uuid.UUID, req *request.CommentRequest) (*response.CommentResponse, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		ReviewID: review.ID,
		AuthorID: authorID,
		Text:     req.Text,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", reviewID),
			zap.String("author_id", authorID.String()),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", reviewID),
		zap.String("author_id", authorID.String()),
	)

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, authorID))
	return &resp, nil
}

func (s *commentService) Get(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error) {
	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, titleID, reviewID, commentID string, userID uuid.UUID, req *request.CommentUpdateRequest) (*response.CommentResponse, error) {
	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCanEdit(ctx, comment.AuthorID, userID); err != nil {
		return nil, err
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.log.Error("Failed to update comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("update comment: %w", err)
	}

	resp := response.CommentToResponse(comment, s.authorUsername(ctx, comment.AuthorID))
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, titleID, reviewID, commentID string, userID uuid.UUID) error {
	comment, err := s.findComment(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if err := s.checkCanEdit(ctx, comment.AuthorID, userID); err != nil {
		return err
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		s.log.Error("Failed to delete comment", zap.Error(err), zap.String("comment_id", commentID))
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

// findReview resolves the review and checks the whole path chain: the review
// must belong to the title.
func (s *commentService) findReview(ctx context.Context, titleID, reviewID string) (*entity.Review, error) {
	titleUUID, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("%w: title %s", ErrNotFound, titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, titleUUID)
	if err != nil {
		return nil, fmt.Errorf("find title: %w", err)
	}
	if title == nil {
		return nil, fmt.Errorf("%w: title %s", ErrNotFound, titleID)
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil || review.TitleID != title.ID {
		return nil, fmt.Errorf("%w: review %s", ErrNotFound, reviewID)
	}

	return review, nil
}

func (s *commentService) findComment(ctx context.Context, titleID, reviewID, commentID string) (*entity.Comment, error) {
	review, err := s.findReview(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(commentID)
	if err != nil {
		return nil, fmt.Errorf("%w: comment %s", ErrNotFound, commentID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil || comment.ReviewID != review.ID {
		return nil, fmt.Errorf("%w: comment %s", ErrNotFound, commentID)
	}

	return comment, nil
}

// Same rule as reviews: author or moderator, admin excluded.
func (s *commentService) checkCanEdit(ctx context.Context, authorID, userID uuid.UUID) error {
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

func (s *commentService) authorUsername(ctx context.Context, authorID uuid.UUID) string {
	user, err := s.repo.User.FindByID(ctx, authorID)
	if err != nil || user == nil {
		return ""
	}
	return user.Username
}
