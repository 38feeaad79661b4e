package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/hkdf"
)

// ConfirmationSigner issues and checks the confirmation code mailed on
// signup. The MAC covers the user fields that must stay unchanged between
// issue and exchange (id, email, active flag), so activating the account
// invalidates every previously issued code for it. Nothing is stored.
type ConfirmationSigner struct {
	key    []byte
	expiry time.Duration
}

const confirmationKeySalt = "confirmation-code-v1"

func NewConfirmationSigner(secret string, expiry time.Duration) (*ConfirmationSigner, error) {
	if secret == "" {
		return nil, fmt.Errorf("confirmation secret is empty")
	}

	// Derive a dedicated MAC key so the raw secret is never reused across
	// purposes (JWT signing uses the secret directly).
	reader := hkdf.New(sha256.New, []byte(secret), []byte(confirmationKeySalt), nil)
	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive confirmation key: %w", err)
	}

	return &ConfirmationSigner{
		key:    key,
		expiry: expiry,
	}, nil
}

// MakeToken returns "<base36 expiry>-<hex mac>" for the given user state.
func (s *ConfirmationSigner) MakeToken(userID, email string, isActive bool) string {
	expiresAt := time.Now().Add(s.expiry).Unix()
	sig := s.sign(userID, email, isActive, expiresAt)
	return fmt.Sprintf("%s-%s", strconv.FormatInt(expiresAt, 36), sig)
}

// CheckToken reports whether token is unexpired and was issued for exactly
// this user state. A false result gives no hint about which check failed.
func (s *ConfirmationSigner) CheckToken(token, userID, email string, isActive bool) bool {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return false
	}

	expiresAt, err := strconv.ParseInt(parts[0], 36, 64)
	if err != nil {
		return false
	}

	if time.Now().Unix() > expiresAt {
		return false
	}

	expected := s.sign(userID, email, isActive, expiresAt)
	return hmac.Equal([]byte(expected), []byte(parts[1]))
}

func (s *ConfirmationSigner) sign(userID, email string, isActive bool, expiresAt int64) string {
	mac := hmac.New(sha256.New, s.key)
	fmt.Fprintf(mac, "%s|%s|%t|%d", userID, email, isActive, expiresAt)
	return hex.EncodeToString(mac.Sum(nil))
}
