package utils

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// IsValidUsername reports whether a username is acceptable:
// 3-64 characters, letters, numbers and underscores, starting with a
// letter or number.
func IsValidUsername(username string) bool {
	username = strings.TrimSpace(username)

	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return false
	}
	if !usernameRegex.MatchString(username) {
		return false
	}
	return unicode.IsLetter(rune(username[0])) || unicode.IsNumber(rune(username[0]))
}

// NormalizeUsername lowercases and trims a username for storage, so the
// uniqueness check is case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
