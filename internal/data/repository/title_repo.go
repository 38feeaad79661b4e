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

type TitleRepository interface {
	Create(ctx context.Context, title *entity.Title) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Title, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, title *entity.Title) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type titleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleRepository(db database.PgxIface, log *zap.Logger) TitleRepository {
	return &titleRepository{
		db:  db,
		log: log.With(zap.String("repository", "title")),
	}
}

func (r *titleRepository) Create(ctx context.Context, title *entity.Title) error {
	query := `
		INSERT INTO titles (id, name, year, description, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.CreatedAt,
		title.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", title.Name),
		)
		return fmt.Errorf("create title %s: %w", title.Name, err)
	}

	return nil
}

func (r *titleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	query := `
		SELECT id, name, year, description, category_id, created_at, updated_at
		FROM titles
		WHERE id = $1
	`

	var title entity.Title
	err := r.db.QueryRow(ctx, query, id).Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.CategoryID,
		&title.CreatedAt,
		&title.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find title by ID",
			zap.Error(err),
			zap.String("title_id", id.String()),
		)
		return nil, fmt.Errorf("find title by ID %s: %w", id.String(), err)
	}

	return &title, nil
}

func (r *titleRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Title, error) {
	query := `
		SELECT id, name, year, description, category_id, created_at, updated_at
		FROM titles
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find titles",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find titles: %w", err)
	}
	defer rows.Close()

	var titles []*entity.Title
	for rows.Next() {
		var title entity.Title
		err := rows.Scan(
			&title.ID,
			&title.Name,
			&title.Year,
			&title.Description,
			&title.CategoryID,
			&title.CreatedAt,
			&title.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan title row", zap.Error(err))
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		titles = append(titles, &title)
	}

	return titles, nil
}

func (r *titleRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM titles`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count titles", zap.Error(err))
		return 0, fmt.Errorf("count titles: %w", err)
	}

	return count, nil
}

func (r *titleRepository) Update(ctx context.Context, title *entity.Title) error {
	query := `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update title",
			zap.Error(err),
			zap.String("title_id", title.ID.String()),
		)
		return fmt.Errorf("update title %s: %w", title.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %s not found", title.ID.String())
	}

	return nil
}

func (r *titleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM titles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete title",
			zap.Error(err),
			zap.String("title_id", id.String()),
		)
		return fmt.Errorf("delete title %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %s not found", id.String())
	}

	r.log.Info("Title deleted", zap.String("title_id", id.String()))
	return nil
}
