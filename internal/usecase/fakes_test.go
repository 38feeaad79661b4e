package usecase

import (
	"context"
	"sort"
	"sync"

	"review-catalog/internal/data/entity"
	"review-catalog/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes backing the service tests. They mirror the
// Postgres implementations' contract: lookups return (nil, nil) on a miss.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.User
	for _, u := range f.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	return page(all, limit, offset), nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Category
	for _, c := range f.categories {
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Slug < all[j].Slug })
	return page(all, limit, offset), nil
}

func (f *fakeCategoryRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.categories)), nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

type fakeGenreRepo struct {
	mu          sync.Mutex
	genres      map[uuid.UUID]*entity.Genre
	titleGenres map[uuid.UUID][]uuid.UUID
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{
		genres:      make(map[uuid.UUID]*entity.Genre),
		titleGenres: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *genre
	f.genres[genre.ID] = &cp
	return nil
}

func (f *fakeGenreRepo) FindBySlug(_ context.Context, slug string) (*entity.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.genres {
		if g.Slug == slug {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeGenreRepo) FindBySlugs(_ context.Context, slugs []string) ([]*entity.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Genre
	for _, slug := range slugs {
		for _, g := range f.genres {
			if g.Slug == slug {
				cp := *g
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeGenreRepo) FindByTitleID(_ context.Context, titleID uuid.UUID) ([]*entity.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Genre
	for _, id := range f.titleGenres[titleID] {
		if g, ok := f.genres[id]; ok {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeGenreRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Genre
	for _, g := range f.genres {
		cp := *g
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Slug < all[j].Slug })
	return page(all, limit, offset), nil
}

func (f *fakeGenreRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.genres)), nil
}

func (f *fakeGenreRepo) Update(_ context.Context, genre *entity.Genre) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *genre
	f.genres[genre.ID] = &cp
	return nil
}

func (f *fakeGenreRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.genres, id)
	return nil
}

// fakeTitleGenreRepo shares state with fakeGenreRepo so FindByTitleID sees
// what Replace wrote.
type fakeTitleGenreRepo struct {
	genres *fakeGenreRepo
}

func (f *fakeTitleGenreRepo) Replace(_ context.Context, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	f.genres.mu.Lock()
	defer f.genres.mu.Unlock()
	f.genres.titleGenres[titleID] = append([]uuid.UUID(nil), genreIDs...)
	return nil
}

type fakeTitleRepo struct {
	mu     sync.Mutex
	titles map[uuid.UUID]*entity.Title
}

func newFakeTitleRepo() *fakeTitleRepo {
	return &fakeTitleRepo{titles: make(map[uuid.UUID]*entity.Title)}
}

func (f *fakeTitleRepo) Create(_ context.Context, title *entity.Title) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *title
	f.titles[title.ID] = &cp
	return nil
}

func (f *fakeTitleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Title, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.titles[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTitleRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Title, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Title
	for _, t := range f.titles {
		cp := *t
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return page(all, limit, offset), nil
}

func (f *fakeTitleRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.titles)), nil
}

func (f *fakeTitleRepo) Update(_ context.Context, title *entity.Title) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *title
	f.titles[title.ID] = &cp
	return nil
}

func (f *fakeTitleRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.titles, id)
	return nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.reviews[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeReviewRepo) FindByTitleID(_ context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Review
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			cp := *r
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, limit, offset), nil
}

func (f *fakeReviewRepo) FindByTitleAndAuthor(_ context.Context, titleID, authorID uuid.UUID) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reviews {
		if r.TitleID == titleID && r.AuthorID == authorID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) CountByTitleID(_ context.Context, titleID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			n++
		}
	}
	return n, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *review
	f.reviews[review.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) GetTitleRating(_ context.Context, titleID uuid.UUID) (*float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum, n int
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			sum += r.Score
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(n)
	return &avg, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uuid.UUID]*entity.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.comments[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCommentRepo) FindByReviewID(_ context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*entity.Comment
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			cp := *c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return page(all, limit, offset), nil
}

func (f *fakeCommentRepo) CountByReviewID(_ context.Context, reviewID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *comment
	f.comments[comment.ID] = &cp
	return nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, id)
	return nil
}

// fakeMailer records outbound mail instead of sending it
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

func newFakeRepository() *repository.Repository {
	genres := newFakeGenreRepo()
	return &repository.Repository{
		User:       newFakeUserRepo(),
		Category:   newFakeCategoryRepo(),
		Genre:      genres,
		Title:      newFakeTitleRepo(),
		TitleGenre: &fakeTitleGenreRepo{genres: genres},
		Review:     newFakeReviewRepo(),
		Comment:    newFakeCommentRepo(),
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
