package handlers

import (
	"net/http"
	"strconv"

	"github.com/abcmusiclibrary/backend/internal/models"
	"github.com/abcmusiclibrary/backend/internal/services"
)

// parseListParams reads the shared catalog listing query parameters.
// genreOrCategoryParam is "genre" for sheet music and "category" for
// lessons. Unparseable numbers fall back to the defaults; the service
// clamps ranges.
func parseListParams(r *http.Request, genreOrCategoryParam string) services.ListParams {
	q := r.URL.Query()

	params := services.ListParams{
		GenreOrCategory: q.Get(genreOrCategoryParam),
		Difficulty:      models.Difficulty(q.Get("difficulty")),
		Search:          q.Get("search"),
		Mine:            q.Get("mine") == "true",
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = limit
	}
	if skip, err := strconv.Atoi(q.Get("skip")); err == nil {
		params.Skip = skip
	}
	return params
}
