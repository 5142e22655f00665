package utils

import "strings"

// Helpers for inline file payloads. Uploads arrive as data URLs
// ("data:<media type>;base64,<payload>") and are stored as-is.

func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// MediaKind returns the declared media type of a data URL, or "" when the
// value is not one.
func MediaKind(s string) string {
	if !IsDataURL(s) {
		return ""
	}
	rest := s[len("data:"):]
	if i := strings.IndexAny(rest, ";,"); i >= 0 {
		return rest[:i]
	}
	return ""
}

func IsImagePayload(s string) bool {
	return strings.HasPrefix(MediaKind(s), "image/")
}
