package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		email    string
		expected string
	}{
		{"someone@example.com", "someone-example-com"},
		{"first.last@mail.org", "first-last-mail-org"},
		{"user_1@host", "user_1-host"},
		{"UPPER@Case.IO", "UPPER-Case-IO"},
		{"a+b@c.d", "a-b-c-d"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DeriveUsername(tt.email), "email %s", tt.email)
	}
}

func TestDeriveUsernameStable(t *testing.T) {
	// The same email always maps to the same username
	assert.Equal(t, DeriveUsername("x@y.z"), DeriveUsername("x@y.z"))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("-3", 10))
}
