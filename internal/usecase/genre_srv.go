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

type GenreService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error)
	Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	GetBySlug(ctx context.Context, slug string) (*response.GenreResponse, error)
	UpdateBySlug(ctx context.Context, slug string, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreService struct {
	genreRepo repository.GenreRepository
	log       *zap.Logger
}

func NewGenreService(genreRepo repository.GenreRepository, log *zap.Logger) GenreService {
	return &genreService{
		genreRepo: genreRepo,
		log:       log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.GenreResponse], error) {
	genres, err := s.genreRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	total, err := s.genreRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count genres: %w", err)
	}

	return response.NewPaginatedResponse(response.GenresToResponse(genres), req.Page, req.PerPage, total), nil
}

func (s *genreService) Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	existing, err := s.genreRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check genre slug: %w", err)
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.genreRepo.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.String("slug", genre.Slug))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) GetBySlug(ctx context.Context, slug string) (*response.GenreResponse, error) {
	genre, err := s.findGenre(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) UpdateBySlug(ctx context.Context, slug string, req *request.GenreRequest) (*response.GenreResponse, error) {
	genre, err := s.findGenre(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Slug != genre.Slug {
		existing, err := s.genreRepo.FindBySlug(ctx, req.Slug)
		if err != nil {
			return nil, fmt.Errorf("check genre slug: %w", err)
		}
		if existing != nil {
			return nil, ErrSlugTaken
		}
	}

	genre.Name = req.Name
	genre.Slug = req.Slug

	if err := s.genreRepo.Update(ctx, genre); err != nil {
		s.log.Error("Failed to update genre", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("update genre: %w", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) DeleteBySlug(ctx context.Context, slug string) error {
	genre, err := s.findGenre(ctx, slug)
	if err != nil {
		return err
	}

	if err := s.genreRepo.Delete(ctx, genre.ID); err != nil {
		s.log.Error("Failed to delete genre", zap.Error(err), zap.String("slug", slug))
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted", zap.String("slug", slug))
	return nil
}

func (s *genreService) findGenre(ctx context.Context, slug string) (*entity.Genre, error) {
	genre, err := s.genreRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre %s", ErrNotFound, slug)
	}
	return genre, nil
}
