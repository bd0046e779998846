package textutil

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"My First Post", "my-first-post"},
		{"  Web   Development  ", "web-development"},
		{"Go 1.26 Released", "go-1-26-released"},
		{"UPPER_case--mix", "upper-case-mix"},
		{"---", ""},
		{"", ""},
		{"über cool", "ber-cool"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyShape(t *testing.T) {
	inputs := []string{
		"Hello, World!",
		"a",
		"123 456",
		"!!!leading trash",
		"trailing trash???",
		"C'est la vie",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if got == "" {
			continue
		}
		assert.True(t, slugPattern.MatchString(got), "Slugify(%q) = %q does not match slug pattern", in, got)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello, World!", "already-a-slug", "Mixed CASE here", ""}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify not idempotent for %q", in)
	}
}

func TestReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}

	assert.Equal(t, 1, ReadingTime(words(1)))
	assert.Equal(t, 1, ReadingTime(words(199)))
	assert.Equal(t, 1, ReadingTime(words(200)))
	assert.Equal(t, 2, ReadingTime(words(201)))
	assert.Equal(t, 2, ReadingTime(words(400)))
	assert.Equal(t, 3, ReadingTime(words(401)))
}

func TestReadingTimeNeverZero(t *testing.T) {
	assert.Equal(t, 1, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("   \n\t  "))
	assert.Equal(t, 1, ReadingTime("one"))
}

func TestExcerpt(t *testing.T) {
	short := "A short post body."
	assert.Equal(t, short, Excerpt(short))

	long := strings.Repeat("x", 300)
	got := Excerpt(long)
	assert.Len(t, got, 153)
	assert.True(t, strings.HasSuffix(got, "..."))

	// Multi-byte content must not be cut mid-rune.
	unicodeBody := strings.Repeat("é", 200)
	got = Excerpt(unicodeBody)
	assert.Equal(t, strings.Repeat("é", 150)+"...", got)
}
