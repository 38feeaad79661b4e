package usecase

import (
	"context"
	"testing"
	"time"

	"review-catalog/internal/data/entity"
	"review-catalog/internal/data/repository"
	"review-catalog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCategory(t *testing.T, repo *repository.Repository, name, slug string) *entity.Category {
	t.Helper()
	category := &entity.Category{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       name,
		Slug:       slug,
	}
	require.NoError(t, repo.Category.Create(context.Background(), category))
	return category
}

func seedGenre(t *testing.T, repo *repository.Repository, name, slug string) *entity.Genre {
	t.Helper()
	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       name,
		Slug:       slug,
	}
	require.NoError(t, repo.Genre.Create(context.Background(), genre))
	return genre
}

func TestCreateTitleResolvesSlugs(t *testing.T) {
	repo := newFakeRepository()
	service := NewTitleService(repo, testLogger())

	seedCategory(t, repo, "Books", "books")
	seedGenre(t, repo, "Drama", "drama")
	seedGenre(t, repo, "Comedy", "comedy")

	category := "books"
	title, err := service.Create(context.Background(), &request.TitleRequest{
		Name:     "Some Book",
		Year:     1999,
		Genre:    []string{"drama", "comedy"},
		Category: &category,
	})
	require.NoError(t, err)

	assert.Equal(t, "Some Book", title.Name)
	require.NotNil(t, title.Category)
	assert.Equal(t, "books", title.Category.Slug)
	assert.Len(t, title.Genre, 2)
	assert.Nil(t, title.Rating)
}

func TestCreateTitleRejectsFutureYear(t *testing.T) {
	repo := newFakeRepository()
	service := NewTitleService(repo, testLogger())

	_, err := service.Create(context.Background(), &request.TitleRequest{
		Name: "From the Future",
		Year: time.Now().Year() + 1,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateTitleRejectsUnknownSlugs(t *testing.T) {
	repo := newFakeRepository()
	service := NewTitleService(repo, testLogger())

	category := "missing"
	_, err := service.Create(context.Background(), &request.TitleRequest{
		Name:     "Some Book",
		Year:     1999,
		Category: &category,
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Create(context.Background(), &request.TitleRequest{
		Name:  "Some Book",
		Year:  1999,
		Genre: []string{"missing"},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetTitleIncludesRating(t *testing.T) {
	repo := newFakeRepository()
	service := NewTitleService(repo, testLogger())

	title, err := service.Create(context.Background(), &request.TitleRequest{Name: "Some Book", Year: 1999})
	require.NoError(t, err)

	titleID := uuid.MustParse(title.ID)
	for i, score := range []int{4, 8} {
		author := seedUser(t, repo, "reader"+uuid.NewString()[:4]+string(rune('a'+i)), entity.RoleUser)
		review := &entity.Review{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			TitleID:    titleID,
			AuthorID:   author.ID,
			Text:       "x",
			Score:      score,
		}
		require.NoError(t, repo.Review.Create(context.Background(), review))
	}

	got, err := service.Get(context.Background(), title.ID)
	require.NoError(t, err)

	require.NotNil(t, got.Rating)
	assert.InDelta(t, 6.0, *got.Rating, 0.001)
}

func TestUpdateTitleReplacesGenres(t *testing.T) {
	repo := newFakeRepository()
	service := NewTitleService(repo, testLogger())

	seedGenre(t, repo, "Drama", "drama")
	seedGenre(t, repo, "Comedy", "comedy")

	title, err := service.Create(context.Background(), &request.TitleRequest{
		Name:  "Some Book",
		Year:  1999,
		Genre: []string{"drama"},
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), title.ID, &request.TitleUpdateRequest{
		Genre: []string{"comedy"},
	})
	require.NoError(t, err)

	require.Len(t, updated.Genre, 1)
	assert.Equal(t, "comedy", updated.Genre[0].Slug)
}

func TestUpdateTitlePartial(t *testing.T) {
	repo := newFakeRepository()
	service := NewTitleService(repo, testLogger())

	title, err := service.Create(context.Background(), &request.TitleRequest{Name: "Some Book", Year: 1999})
	require.NoError(t, err)

	year := 2001
	updated, err := service.Update(context.Background(), title.ID, &request.TitleUpdateRequest{Year: &year})
	require.NoError(t, err)

	assert.Equal(t, 2001, updated.Year)
	assert.Equal(t, "Some Book", updated.Name)
}

func TestDeleteTitle(t *testing.T) {
	repo := newFakeRepository()
	service := NewTitleService(repo, testLogger())

	title, err := service.Create(context.Background(), &request.TitleRequest{Name: "Some Book", Year: 1999})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), title.ID))

	_, err = service.Get(context.Background(), title.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
