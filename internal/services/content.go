package services

import (
	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/repositories"
)

// Pagination bounds. Out-of-range values are clamped, never rejected.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListParams are the query parameters shared by both catalog listings
type ListParams struct {
	GenreOrCategory string
	Difficulty      models.Difficulty
	Search          string
	Mine            bool
	Limit           int
	Skip            int
}

// clampPagination normalizes limit and skip into their allowed ranges
func clampPagination(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}

// contentFilter translates list parameters into a repository filter.
// Listings are published-only unless the caller scopes to their own
// content; the caller is responsible for authorizing the mine scope.
func contentFilter(actor *models.User, params ListParams) repositories.ContentFilter {
	limit, skip := clampPagination(params.Limit, params.Skip)

	filter := repositories.ContentFilter{
		GenreOrCategory: params.GenreOrCategory,
		Difficulty:      params.Difficulty,
		Search:          params.Search,
		Limit:           limit,
		Offset:          skip,
	}
	if params.Mine {
		filter.OwnerID = actor.ID
	} else {
		filter.PublishedOnly = true
	}
	return filter
}

// dedupeTags removes duplicate tags, keeping first-occurrence order
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	deduped := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		deduped = append(deduped, tag)
	}
	return deduped
}
