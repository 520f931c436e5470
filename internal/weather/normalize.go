package weather

import (
	"regexp"
	"strings"
)

// countryRewrites canonicalizes common country-name suffixes to the ISO codes
// the upstream geocoder understands. Each pattern is anchored to the end of
// the query so city names are never touched.
var countryRewrites = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)\s*,\s*uk$`), ",GB"},
	{regexp.MustCompile(`(?i)\s*,\s*usa$`), ",US"},
	{regexp.MustCompile(`(?i)\s*,\s*united kingdom$`), ",GB"},
}

// Normalize trims a free-form location string and rewrites known country
// suffixes, e.g. "London, UK" -> "London,GB". It is pure and idempotent.
func Normalize(raw string) string {
	q := strings.TrimSpace(raw)
	for _, r := range countryRewrites {
		q = r.pattern.ReplaceAllString(q, r.repl)
	}
	return q
}
