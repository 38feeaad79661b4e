package usecase

import (
	"review-catalog/internal/data/repository"
	"review-catalog/pkg/mailer"
	"review-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	signer *utils.ConfirmationSigner,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, mail, signer, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Genre:    NewGenreService(repo.Genre, log),
		Title:    NewTitleService(repo, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
	}
}
