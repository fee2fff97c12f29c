package util

import (
	"net/url"
	"strings"
)

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// MaskSecret hides sensitive parts of a string for safe display in logs.
// If the string is shorter than visiblePrefix, it is fully masked.
func MaskSecret(s string, visiblePrefix int) string {
	if len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}

// MaskQueryParam returns rawURL with the value of the named query parameter
// masked. Unparseable URLs are returned unchanged.
func MaskQueryParam(rawURL, name string, visiblePrefix int) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.RawQuery == "" {
		return rawURL
	}
	parts := strings.Split(u.RawQuery, "&")
	for i, part := range parts {
		key, value, found := strings.Cut(part, "=")
		if found && key == name && value != "" {
			parts[i] = key + "=" + MaskSecret(value, visiblePrefix)
		}
	}
	u.RawQuery = strings.Join(parts, "&")
	return u.String()
}
