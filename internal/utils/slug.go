package utils

import "strings"

// Slugify derives a URL-safe identifier from a display string: lowercase,
// with every run of non-alphanumeric characters collapsed into a single
// hyphen and leading/trailing hyphens trimmed.
//
//	Slugify("Alice Cooper")      == "alice-cooper"
//	Slugify("  Go --- rocks! ")  == "go-rocks"
//
// Slugs are a secondary identifier only and are not guaranteed to be
// globally unique.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
