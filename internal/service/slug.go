package service

import "strings"

// Slugify derives a URL slug from a board name: lowercase, whitespace runs
// collapsed to single hyphens, everything outside [a-z0-9-] stripped.
func Slugify(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	hyphenated := strings.Join(strings.Fields(lowered), "-")

	var b strings.Builder
	b.Grow(len(hyphenated))
	for _, c := range hyphenated {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
