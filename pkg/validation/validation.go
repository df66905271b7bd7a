// Package validation holds the input rules for account registration.
package validation

import (
	"regexp"
	"strings"
)

var (
	// usernames are 3-20 characters: letters, digits, underscore
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	// deliberately permissive: non-empty local part followed by @ and anything
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
)

func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword requires at least 6 characters.
func IsValidPassword(password string) bool {
	return len(password) >= 6
}

func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
