package utils

import (
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// DeriveUsername builds a username from an email address. Every character
// outside [a-zA-Z0-9_] becomes '-', so "user@mail.com" -> "user-mail-com".
// The same email always yields the same username.
func DeriveUsername(email string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_':
			return r
		default:
			return '-'
		}
	}, email)
}
