// ABOUTME: Client-side style search and tag filtering over a link list
// ABOUTME: Case-insensitive substring match across title, summary, and URL

package links

import (
	"sort"
	"strings"

	"stash-app-api/core/domain"
)

// Filter returns the links where query is a case-insensitive substring of
// the title, summary, or URL, intersected with the links carrying tag when
// tag is non-empty. Both predicates are ANDed; empty values match all.
func Filter(list []domain.Link, query, tag string) []domain.Link {
	q := strings.ToLower(query)

	filtered := make([]domain.Link, 0, len(list))
	for _, link := range list {
		if q != "" && !matchesQuery(link, q) {
			continue
		}
		if tag != "" && !link.HasTag(tag) {
			continue
		}
		filtered = append(filtered, link)
	}

	return filtered
}

// matchesQuery checks the lowercased query against the searchable fields
func matchesQuery(link domain.Link, q string) bool {
	return strings.Contains(strings.ToLower(link.Title), q) ||
		strings.Contains(strings.ToLower(link.Summary), q) ||
		strings.Contains(strings.ToLower(link.URL), q)
}

// DistinctTags returns the sorted set of tags across all links
func DistinctTags(list []domain.Link) []string {
	seen := make(map[string]struct{})
	for _, link := range list {
		for _, tag := range link.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}
