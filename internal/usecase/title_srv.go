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

type TitleService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error)
	Create(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error)
	Get(ctx context.Context, titleID string) (*response.TitleResponse, error)
	Update(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error)
	Delete(ctx context.Context, titleID string) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	titles, err := s.repo.Title.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}

	total, err := s.repo.Title.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count titles: %w", err)
	}

	titleResponses := make([]response.TitleResponse, len(titles))
	for i, title := range titles {
		resp, err := s.expand(ctx, title)
		if err != nil {
			return nil, err
		}
		titleResponses[i] = *resp
	}

	return response.NewPaginatedResponse(titleResponses, req.Page, req.PerPage, total), nil
}

func (s *titleService) Create(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error) {
	if req.Year > time.Now().Year() {
		return nil, ErrYearInFuture
	}

	categoryID, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genres, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  categoryID,
	}

	if err := s.repo.Title.Create(ctx, title); err != nil {
		s.log.Error("Failed to create title", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create title: %w", err)
	}

	if len(genres) > 0 {
		if err := s.repo.TitleGenre.Replace(ctx, title.ID, genreIDs(genres)); err != nil {
			s.log.Error("Failed to set title genres", zap.Error(err), zap.String("title_id", title.ID.String()))
			return nil, fmt.Errorf("set title genres: %w", err)
		}
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name),
		zap.Int("year", title.Year))

	return s.expand(ctx, title)
}

func (s *titleService) Get(ctx context.Context, titleID string) (*response.TitleResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	return s.expand(ctx, title)
}

func (s *titleService) Update(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error) {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return nil, err
	}

	if req.Year != nil {
		if *req.Year > time.Now().Year() {
			return nil, ErrYearInFuture
		}
		title.Year = *req.Year
	}
	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Category != nil {
		categoryID, err := s.resolveCategory(ctx, req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = categoryID
	}

	title.UpdatedAt = time.Now()
	if err := s.repo.Title.Update(ctx, title); err != nil {
		s.log.Error("Failed to update title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("update title: %w", err)
	}

	if req.Genre != nil {
		genres, err := s.resolveGenres(ctx, req.Genre)
		if err != nil {
			return nil, err
		}
		if err := s.repo.TitleGenre.Replace(ctx, title.ID, genreIDs(genres)); err != nil {
			s.log.Error("Failed to set title genres", zap.Error(err), zap.String("title_id", titleID))
			return nil, fmt.Errorf("set title genres: %w", err)
		}
	}

	return s.expand(ctx, title)
}

func (s *titleService) Delete(ctx context.Context, titleID string) error {
	title, err := s.findTitle(ctx, titleID)
	if err != nil {
		return err
	}

	// Reviews and their comments go with the title (cascade in the schema)
	if err := s.repo.Title.Delete(ctx, title.ID); err != nil {
		s.log.Error("Failed to delete title", zap.Error(err), zap.String("title_id", titleID))
		return fmt.Errorf("delete title: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *titleService) findTitle(ctx context.Context, titleID string) (*entity.Title, error) {
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

// expand loads the related genres, category and the computed rating for the
// read representation.
func (s *titleService) expand(ctx context.Context, title *entity.Title) (*response.TitleResponse, error) {
	genres, err := s.repo.Genre.FindByTitleID(ctx, title.ID)
	if err != nil {
		return nil, fmt.Errorf("load title genres: %w", err)
	}

	var category *entity.Category
	if title.CategoryID != nil {
		category, err = s.repo.Category.FindByID(ctx, *title.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("load title category: %w", err)
		}
	}

	rating, err := s.repo.Review.GetTitleRating(ctx, title.ID)
	if err != nil {
		return nil, fmt.Errorf("load title rating: %w", err)
	}

	resp := response.TitleToResponse(title, genres, category, rating)
	return &resp, nil
}

func (s *titleService) resolveCategory(ctx context.Context, slug *string) (*uuid.UUID, error) {
	if slug == nil || *slug == "" {
		return nil, nil
	}

	category, err := s.repo.Category.FindBySlug(ctx, *slug)
	if err != nil {
		return nil, fmt.Errorf("resolve category slug: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", ErrUnknownSlug, *slug)
	}

	return &category.ID, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]*entity.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("resolve genre slugs: %w", err)
	}

	if len(genres) != len(uniqueStrings(slugs)) {
		return nil, fmt.Errorf("%w: one or more genres", ErrUnknownSlug)
	}

	return genres, nil
}

func genreIDs(genres []*entity.Genre) []uuid.UUID {
	ids := make([]uuid.UUID, len(genres))
	for i, genre := range genres {
		ids[i] = genre.ID
	}
	return ids
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
