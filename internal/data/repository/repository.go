package repository

import (
	"errors"

	"review-catalog/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Category   CategoryRepository
	Genre      GenreRepository
	Title      TitleRepository
	TitleGenre TitleGenreRepository
	Review     ReviewRepository
	Comment    CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Category:   NewCategoryRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		Title:      NewTitleRepository(db, log),
		TitleGenre: NewTitleGenreRepository(db, log),
		Review:     NewReviewRepository(db, log),
		Comment:    NewCommentRepository(db, log),
	}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). The review uniqueness check relies on this as
// the backstop for concurrent first-time reviews.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
