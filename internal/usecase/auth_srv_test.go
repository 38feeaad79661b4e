package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"review-catalog/internal/dto/request"
	"review-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestService(t *testing.T) (AuthService, *fakeMailer, *utils.ConfirmationSigner, *fakeUserRepo) {
	t.Helper()

	repo := newFakeRepository()
	users := repo.User.(*fakeUserRepo)

	config := &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
	}

	signer, err := utils.NewConfirmationSigner("test-secret", time.Hour)
	require.NoError(t, err)

	mail := &fakeMailer{}
	service := NewAuthService(repo, config, mail, signer, testLogger())
	return service, mail, signer, users
}

func TestSignupCreatesInactiveUserWithDerivedUsername(t *testing.T) {
	service, mail, _, users := newAuthTestService(t)

	resp, err := service.Signup(context.Background(), &request.SignupRequest{
		Email: "someone@example.com",
		// Client-supplied username is ignored
		Username: "chosen-name",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "someone@example.com")

	user, err := users.FindByEmail(context.Background(), "someone@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "someone-example-com", user.Username)
	assert.False(t, user.IsActive)
	assert.Equal(t, "user", string(user.Role))

	// Mail goes out asynchronously
	assert.Eventually(t, func() bool {
		mail.mu.Lock()
		defer mail.mu.Unlock()
		return len(mail.sent) == 1
	}, time.Second, 10*time.Millisecond)

	mail.mu.Lock()
	defer mail.mu.Unlock()
	assert.Equal(t, "someone@example.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].body, "Confirmation code")
}

func TestSignupAcceptsLongEmail(t *testing.T) {
	service, _, _, users := newAuthTestService(t)

	// Derivation is length-preserving, so the stored username is as long as
	// the email itself and must fit the username column.
	req := &request.SignupRequest{Email: "jonathan.harrington@example.com"}
	assert.Empty(t, utils.ValidateStruct(req))

	_, err := service.Signup(context.Background(), req)
	require.NoError(t, err)

	user, err := users.FindByEmail(context.Background(), "jonathan.harrington@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jonathan-harrington-example-com", user.Username)
	assert.LessOrEqual(t, len(user.Username), 60)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	service, _, _, _ := newAuthTestService(t)

	_, err := service.Signup(context.Background(), &request.SignupRequest{Email: "someone@example.com"})
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), &request.SignupRequest{Email: "someone@example.com"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIssueTokenActivatesUser(t *testing.T) {
	service, _, signer, users := newAuthTestService(t)

	_, err := service.Signup(context.Background(), &request.SignupRequest{Email: "someone@example.com"})
	require.NoError(t, err)

	user, err := users.FindByEmail(context.Background(), "someone@example.com")
	require.NoError(t, err)
	code := signer.MakeToken(user.ID.String(), user.Email, user.IsActive)

	resp, err := service.IssueToken(context.Background(), &request.TokenRequest{
		Email:            "someone@example.com",
		ConfirmationCode: code,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.ParseAccessToken("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "someone-example-com", claims.Username)

	user, err = users.FindByEmail(context.Background(), "someone@example.com")
	require.NoError(t, err)
	assert.True(t, user.IsActive)
}

func TestIssueTokenCodeIsSingleUse(t *testing.T) {
	service, _, signer, users := newAuthTestService(t)

	_, err := service.Signup(context.Background(), &request.SignupRequest{Email: "someone@example.com"})
	require.NoError(t, err)

	user, err := users.FindByEmail(context.Background(), "someone@example.com")
	require.NoError(t, err)
	code := signer.MakeToken(user.ID.String(), user.Email, user.IsActive)

	_, err = service.IssueToken(context.Background(), &request.TokenRequest{
		Email:            "someone@example.com",
		ConfirmationCode: code,
	})
	require.NoError(t, err)

	// Activation changed the bound state, so the same code must now fail
	_, err = service.IssueToken(context.Background(), &request.TokenRequest{
		Email:            "someone@example.com",
		ConfirmationCode: code,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIssueTokenUnknownEmail(t *testing.T) {
	service, _, _, _ := newAuthTestService(t)

	_, err := service.IssueToken(context.Background(), &request.TokenRequest{
		Email:            "nobody@example.com",
		ConfirmationCode: "whatever",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIssueTokenBadCode(t *testing.T) {
	service, _, _, _ := newAuthTestService(t)

	_, err := service.Signup(context.Background(), &request.SignupRequest{Email: "someone@example.com"})
	require.NoError(t, err)

	_, err = service.IssueToken(context.Background(), &request.TokenRequest{
		Email:            "someone@example.com",
		ConfirmationCode: "bogus-code",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, strings.Contains(err.Error(), "confirmation code"))
}
