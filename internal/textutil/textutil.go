// Package textutil provides the pure text derivations used by the blog
// content lifecycle: slug generation, reading-time estimation, and
// excerpt derivation.
package textutil

import "strings"

const (
	// wordsPerMinute is the assumed reading speed for time estimates.
	wordsPerMinute = 200
	// excerptLength is the number of characters kept when deriving an
	// excerpt from post content.
	excerptLength = 150
)

// Slugify derives a URL-safe identifier from free text. Input is
// lower-cased, every run of characters outside [a-z0-9] collapses to a
// single hyphen, and leading/trailing hyphens are trimmed. Empty input
// yields an empty string.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
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

// ReadingTime estimates reading minutes for the given content at 200
// words per minute, rounded up. The result is never below one minute,
// so a one-word body reads as 1 and an empty body (which validation
// rejects before estimation) still yields a sane value.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// Excerpt derives a short listing summary: the first 150 characters of
// content followed by an ellipsis. Content at or under the limit is
// returned unchanged.
func Excerpt(content string) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) <= excerptLength {
		return string(runes)
	}
	return string(runes[:excerptLength]) + "..."
}
