package repository

import (
	"context"
	"fmt"

	"review-catalog/internal/data/entity"
	"review-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("slug", category.Slug),
		)
		return fmt.Errorf("create category %s: %w", category.Slug, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	query := `SELECT id, name, slug, created_at FROM categories WHERE id = $1`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id.String(), err)
	}

	return &category, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	query := `SELECT id, name, slug, created_at FROM categories WHERE slug = $1`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find category by slug %s: %w", slug, err)
	}

	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM categories
		ORDER BY slug
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find categories",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *categoryRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM categories`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count categories", zap.Error(err))
		return 0, fmt.Errorf("count categories: %w", err)
	}

	return count, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
	)

	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", category.ID.String()),
		)
		return fmt.Errorf("update category %s: %w", category.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", category.ID.String())
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return fmt.Errorf("delete category %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", id.String())
	}

	return nil
}
