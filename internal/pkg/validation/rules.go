package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail checks an address against the email pattern. Matching is
// case-insensitive; the pattern is lowercase-only.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(email))
}

// IsValidPassword enforces the minimum password length.
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// IsValidName checks display-name length bounds.
func IsValidName(name string) bool {
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}
