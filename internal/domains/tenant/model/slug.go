package model

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const MaxSlugAttempts = 50

// Slugify lower-cases name, strips diacritics and collapses every run of
// characters outside [a-z0-9] into a single hyphen.
func Slugify(name string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(folder, strings.ToLower(name))
	if err != nil {
		folded = strings.ToLower(name)
	}

	var builder strings.Builder

	pendingDash := false

	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && builder.Len() > 0 {
				builder.WriteByte('-')
			}

			builder.WriteRune(r)

			pendingDash = false

			continue
		}

		pendingDash = true
	}

	return builder.String()
}

// SlugCandidate returns base for attempt 1 and base-N afterwards.
func SlugCandidate(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}

	return base + "-" + strconv.Itoa(attempt)
}
