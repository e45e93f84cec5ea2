package util

import "strings"

// Slugify lowercases the name, collapses every run of characters outside
// [a-z0-9] into a single hyphen, and trims leading/trailing hyphens. The
// result is stable: Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidSlug reports whether s is non-empty and already in slug form.
func ValidSlug(s string) bool {
	return s != "" && Slugify(s) == s
}
