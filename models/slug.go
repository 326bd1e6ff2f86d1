package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes accented letters and strips the combining marks,
// so "Café" folds to "Cafe" before the ASCII filter runs.
var deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a human-readable name into a URL-safe slug: lowercased,
// accents folded to their ASCII base letters, runs of whitespace and
// separators collapsed into single hyphens, everything else dropped.
func Slugify(name string) string {
	if folded, _, err := transform.String(deaccent, name); err == nil {
		name = folded
	}
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '\t':
			pendingDash = true
		}
	}
	return b.String()
}
