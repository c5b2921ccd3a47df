package utils

import "strings"

// Truncate cuts s to at most n runes, appending "..." when something was cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n < 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// MaskSecret keeps the first and last 4 characters of long secrets and hides the rest.
func MaskSecret(secret string) string {
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
}
