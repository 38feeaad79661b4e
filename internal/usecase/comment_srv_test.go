package usecase

import (
	"context"
	"testing"

	"review-catalog/internal/data/entity"
	"review-catalog/internal/data/repository"
	"review-catalog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReview(t *testing.T, repo *repository.Repository, title *entity.Title, author *entity.User) *entity.Review {
	t.Helper()
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		TitleID:    title.ID,
		AuthorID:   author.ID,
		Text:       "seed review",
		Score:      7,
	}
	require.NoError(t, repo.Review.Create(context.Background(), review))
	return review
}

func TestCreateComment(t *testing.T) {
	repo := newFakeRepository()
	service := NewCommentService(repo, testLogger())

	reviewer := seedUser(t, repo, "reviewer", entity.RoleUser)
	commenter := seedUser(t, repo, "commenter", entity.RoleUser)
	title := seedTitle(t, repo, "Some Book")
	review := seedReview(t, repo, title, reviewer)

	comment, err := service.Create(context.Background(), title.ID.String(), review.ID.String(), commenter.ID, &request.CommentRequest{
		Text: "I agree",
	})
	require.NoError(t, err)

	assert.Equal(t, "I agree", comment.Text)
	assert.Equal(t, "commenter", comment.Author)
}

func TestCreateCommentChecksParentChain(t *testing.T) {
	repo := newFakeRepository()
	service := NewCommentService(repo, testLogger())

	reviewer := seedUser(t, repo, "reviewer", entity.RoleUser)
	titleA := seedTitle(t, repo, "Book A")
	titleB := seedTitle(t, repo, "Book B")
	review := seedReview(t, repo, titleA, reviewer)

	// The review exists but not under title B
	_, err := service.Create(context.Background(), titleB.ID.String(), review.ID.String(), reviewer.ID, &request.CommentRequest{Text: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	// Unknown review under the right title
	_, err = service.Create(context.Background(), titleA.ID.String(), uuid.NewString(), reviewer.ID, &request.CommentRequest{Text: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCommentChecksReviewOwnership(t *testing.T) {
	repo := newFakeRepository()
	service := NewCommentService(repo, testLogger())

	reviewer := seedUser(t, repo, "reviewer", entity.RoleUser)
	title := seedTitle(t, repo, "Some Book")
	reviewA := seedReview(t, repo, title, reviewer)

	otherAuthor := seedUser(t, repo, "other", entity.RoleUser)
	reviewB := seedReview(t, repo, title, otherAuthor)

	comment, err := service.Create(context.Background(), title.ID.String(), reviewA.ID.String(), reviewer.ID, &request.CommentRequest{Text: "x"})
	require.NoError(t, err)

	// Reachable under its own review
	_, err = service.Get(context.Background(), title.ID.String(), reviewA.ID.String(), comment.ID)
	assert.NoError(t, err)

	// Not under a sibling review
	_, err = service.Get(context.Background(), title.ID.String(), reviewB.ID.String(), comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCommentPermissions(t *testing.T) {
	repo := newFakeRepository()
	service := NewCommentService(repo, testLogger())

	reviewer := seedUser(t, repo, "reviewer", entity.RoleUser)
	other := seedUser(t, repo, "other", entity.RoleUser)
	moderator := seedUser(t, repo, "mod", entity.RoleModerator)
	admin := seedUser(t, repo, "boss", entity.RoleAdmin)

	title := seedTitle(t, repo, "Some Book")
	review := seedReview(t, repo, title, reviewer)

	comment, err := service.Create(context.Background(), title.ID.String(), review.ID.String(), reviewer.ID, &request.CommentRequest{Text: "x"})
	require.NoError(t, err)

	text := "edited"
	req := &request.CommentUpdateRequest{Text: &text}

	_, err = service.Update(context.Background(), title.ID.String(), review.ID.String(), comment.ID, other.ID, req)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = service.Update(context.Background(), title.ID.String(), review.ID.String(), comment.ID, admin.ID, req)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	updated, err := service.Update(context.Background(), title.ID.String(), review.ID.String(), comment.ID, reviewer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	err = service.Delete(context.Background(), title.ID.String(), review.ID.String(), comment.ID, moderator.ID)
	assert.NoError(t, err)
}

func TestListCommentsPaginated(t *testing.T) {
	repo := newFakeRepository()
	service := NewCommentService(repo, testLogger())

	reviewer := seedUser(t, repo, "reviewer", entity.RoleUser)
	title := seedTitle(t, repo, "Some Book")
	review := seedReview(t, repo, title, reviewer)

	for i := 0; i < 3; i++ {
		_, err := service.Create(context.Background(), title.ID.String(), review.ID.String(), reviewer.ID, &request.CommentRequest{Text: "x"})
		require.NoError(t, err)
	}

	resp, err := service.List(context.Background(), title.ID.String(), review.ID.String(), &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)

	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(3), resp.Pagination.Total)
}
