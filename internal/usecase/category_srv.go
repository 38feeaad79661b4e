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

type CategoryService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	Create(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	GetBySlug(ctx context.Context, slug string) (*response.CategoryResponse, error)
	UpdateBySlug(ctx context.Context, slug string, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	categories, err := s.categoryRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	total, err := s.categoryRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		categoryResponses[i] = response.CategoryToResponse(category)
	}

	return response.NewPaginatedResponse(categoryResponses, req.Page, req.PerPage, total), nil
}

func (s *categoryService) Create(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	existing, err := s.categoryRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, fmt.Errorf("check category slug: %w", err)
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	category := &entity.Category{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
		Slug: req.Slug,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("slug", req.Slug))
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created", zap.String("slug", category.Slug))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*response.CategoryResponse, error) {
	category, err := s.findCategory(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) UpdateBySlug(ctx context.Context, slug string, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	category, err := s.findCategory(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Slug != category.Slug {
		existing, err := s.categoryRepo.FindBySlug(ctx, req.Slug)
		if err != nil {
			return nil, fmt.Errorf("check category slug: %w", err)
		}
		if existing != nil {
			return nil, ErrSlugTaken
		}
	}

	category.Name = req.Name
	category.Slug = req.Slug

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.log.Error("Failed to update category", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("update category: %w", err)
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) DeleteBySlug(ctx context.Context, slug string) error {
	category, err := s.findCategory(ctx, slug)
	if err != nil {
		return err
	}

	// Titles referencing this category keep existing with category unset
	// (ON DELETE SET NULL in the schema)
	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("slug", slug))
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.Info("Category deleted", zap.String("slug", slug))
	return nil
}

func (s *categoryService) findCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", ErrNotFound, slug)
	}
	return category, nil
}
