package repository

import (
	"context"
	"fmt"

	"review-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleGenreRepository interface {
	Replace(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error
}

type titleGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleGenreRepository(db database.PgxIface, log *zap.Logger) TitleGenreRepository {
	return &titleGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "title_genre")),
	}
}

// Replace swaps the full genre set of a title inside one transaction.
func (r *titleGenreRepository) Replace(ctx context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin title genres transaction",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return fmt.Errorf("begin title genres tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, titleID); err != nil {
		r.log.Error("Failed to clear title genres",
			zap.Error(err),
			zap.String("title_id", titleID.String()),
		)
		return fmt.Errorf("clear title genres for %s: %w", titleID.String(), err)
	}

	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			titleID, genreID,
		)
		if err != nil {
			r.log.Error("Failed to attach genre to title",
				zap.Error(err),
				zap.String("title_id", titleID.String()),
				zap.String("genre_id", genreID.String()),
			)
			return fmt.Errorf("attach genre %s to title %s: %w",
				genreID.String(), titleID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit title genres tx: %w", err)
	}

	return nil
}
