package search_service

import (
	"strings"

	"github.com/init-pkg/cinecheck/domain/app"
)

// Match returns the records whose title contains query, ignoring case, in
// their original order. A blank query matches nothing.
func Match(query string, records []app.Record) []app.Record {
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]app.Record, 0)
	if needle == "" {
		return matches
	}

	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			matches = append(matches, r)
		}
	}

	return matches
}
