package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"review-catalog/internal/data/entity"
	"review-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubUserRepo serves a single user by ID
type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindAll(context.Context, int, int) ([]*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) CountAll(context.Context) (int64, error) { return 0, nil }

func (s *stubUserRepo) Update(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

const testSecret = "test-secret"

func activeUser(role entity.UserRole) *entity.User {
	return &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "someone",
		Role:     role,
		IsActive: true,
	}
}

func tokenFor(t *testing.T, user *entity.User) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(testSecret, user.ID.String(), user.Username, string(user.Role), time.Hour)
	require.NoError(t, err)
	return token
}

func authedRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthJWTRejectsMissingHeader(t *testing.T) {
	handler := AuthJWT(testSecret, &stubUserRepo{}, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWTRejectsBadToken(t *testing.T) {
	handler := AuthJWT(testSecret, &stubUserRepo{}, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("garbage"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWTPassesIdentity(t *testing.T) {
	user := activeUser(entity.RoleModerator)
	repo := &stubUserRepo{user: user}

	var gotID uuid.UUID
	var gotRole string
	handler := AuthJWT(testSecret, repo, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = utils.GetUserIDFromContext(r.Context())
			gotRole, _ = utils.GetRoleFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(tokenFor(t, user)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, gotID)
	assert.Equal(t, "moderator", gotRole)
}

func TestAuthJWTRejectsInactiveUser(t *testing.T) {
	user := activeUser(entity.RoleUser)
	user.IsActive = false
	repo := &stubUserRepo{user: user}

	handler := AuthJWT(testSecret, repo, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(tokenFor(t, user)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWTRejectsDeletedUser(t *testing.T) {
	user := activeUser(entity.RoleUser)
	// Token verifies but the account is gone
	repo := &stubUserRepo{}

	handler := AuthJWT(testSecret, repo, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be reached")
		}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(tokenFor(t, user)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func requireAdminChain(repo *stubUserRepo) http.Handler {
	return AuthJWT(testSecret, repo, zap.NewNop())(
		RequireAdmin(repo, zap.NewNop())(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	user := activeUser(entity.RoleUser)
	rec := httptest.NewRecorder()
	requireAdminChain(&stubUserRepo{user: user}).ServeHTTP(rec, authedRequest(tokenFor(t, user)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminForbidsModerator(t *testing.T) {
	user := activeUser(entity.RoleModerator)
	rec := httptest.NewRecorder()
	requireAdminChain(&stubUserRepo{user: user}).ServeHTTP(rec, authedRequest(tokenFor(t, user)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	user := activeUser(entity.RoleAdmin)
	rec := httptest.NewRecorder()
	requireAdminChain(&stubUserRepo{user: user}).ServeHTTP(rec, authedRequest(tokenFor(t, user)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminAllowsSuperuser(t *testing.T) {
	user := activeUser(entity.RoleUser)
	user.IsSuperuser = true
	rec := httptest.NewRecorder()
	requireAdminChain(&stubUserRepo{user: user}).ServeHTTP(rec, authedRequest(tokenFor(t, user)))

	assert.Equal(t, http.StatusOK, rec.Code)
}
