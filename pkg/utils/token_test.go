package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T, expiry time.Duration) *ConfirmationSigner {
	t.Helper()
	signer, err := NewConfirmationSigner("test-secret", expiry)
	require.NoError(t, err)
	return signer
}

func TestConfirmationSignerRoundTrip(t *testing.T) {
	signer := newTestSigner(t, time.Hour)

	code := signer.MakeToken("user-1", "someone@example.com", false)
	assert.True(t, signer.CheckToken(code, "user-1", "someone@example.com", false))
}

func TestConfirmationSignerRejectsStateChange(t *testing.T) {
	signer := newTestSigner(t, time.Hour)

	// Issued against an inactive account
	code := signer.MakeToken("user-1", "someone@example.com", false)

	// Activation changes a bound field, so the same code no longer verifies.
	// This is what makes the code single-use.
	assert.False(t, signer.CheckToken(code, "user-1", "someone@example.com", true))
}

func TestConfirmationSignerRejectsWrongUser(t *testing.T) {
	signer := newTestSigner(t, time.Hour)

	code := signer.MakeToken("user-1", "someone@example.com", false)

	assert.False(t, signer.CheckToken(code, "user-2", "someone@example.com", false))
	assert.False(t, signer.CheckToken(code, "user-1", "other@example.com", false))
}

func TestConfirmationSignerRejectsExpired(t *testing.T) {
	signer := newTestSigner(t, -time.Minute)

	code := signer.MakeToken("user-1", "someone@example.com", false)
	assert.False(t, signer.CheckToken(code, "user-1", "someone@example.com", false))
}

func TestConfirmationSignerRejectsGarbage(t *testing.T) {
	signer := newTestSigner(t, time.Hour)

	assert.False(t, signer.CheckToken("", "user-1", "someone@example.com", false))
	assert.False(t, signer.CheckToken("nodash", "user-1", "someone@example.com", false))
	assert.False(t, signer.CheckToken("zzz-notamac", "user-1", "someone@example.com", false))
}

func TestConfirmationSignerDifferentSecrets(t *testing.T) {
	signerA := newTestSigner(t, time.Hour)
	signerB, err := NewConfirmationSigner("other-secret", time.Hour)
	require.NoError(t, err)

	code := signerA.MakeToken("user-1", "someone@example.com", false)
	assert.False(t, signerB.CheckToken(code, "user-1", "someone@example.com", false))
}

func TestNewConfirmationSignerEmptySecret(t *testing.T) {
	_, err := NewConfirmationSigner("", time.Hour)
	assert.Error(t, err)
}
