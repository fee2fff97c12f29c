package util

import (
	"strings"
	"unicode"
)

// SanitizeEnvValue trims an environment value and strips one pair of
// matching surrounding quotes, as left behind by shells and CI secret stores.
func SanitizeEnvValue(s string) string {
	s = strings.TrimSpace(s)
	if n := len(s); n >= 2 && (s[0] == '"' || s[0] == '\'') && s[n-1] == s[0] {
		s = s[1 : n-1]
	}
	return strings.TrimSpace(s)
}

// NormalizeQuery joins search words into one query: control characters are
// dropped and whitespace runs collapse to a single space.
func NormalizeQuery(words ...string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.Join(words, " "))
	return strings.Join(strings.Fields(cleaned), " ")
}
