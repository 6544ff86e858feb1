// Package language resolves the submission language from a URL path.
// The frontend hosts one page per language (/de/..., /en/..., /nl/...) and
// loads its translation JSON accordingly; the backend only needs the tag to
// label the submission and webhook payload.
package language

import "strings"

// DetectFromPath matches the URL path segments case-insensitively against the
// supported tags and returns the first match, or the fallback if none match.
func DetectFromPath(path string, supported []string, fallback string) string {
	lower := strings.ToLower(path)
	for _, tag := range supported {
		if strings.Contains(lower, "/"+strings.ToLower(tag)+"/") {
			return strings.ToLower(tag)
		}
	}
	return fallback
}

// Normalize validates a submitted language tag against the supported set,
// defaulting to the fallback for anything unknown.
func Normalize(tag string, supported []string, fallback string) string {
	for _, s := range supported {
		if strings.EqualFold(s, tag) {
			return strings.ToLower(s)
		}
	}
	return fallback
}
