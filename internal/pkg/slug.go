package pkg

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slugify lowercases the name and collapses every run of non-alphanumeric
// characters into a single hyphen, trimming leading/trailing hyphens.
// "Mi Comunidad!!" -> "mi-comunidad".
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// UniqueSlug appends a millisecond timestamp suffix when the derived slug is
// already taken, so both communities stay resolvable by slug.
func UniqueSlug(slug string, taken bool, now time.Time) string {
	if !taken {
		return slug
	}
	return fmt.Sprintf("%s-%d", slug, now.UnixMilli())
}
