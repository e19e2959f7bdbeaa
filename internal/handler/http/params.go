package http

import (
	"net/http"
	"strconv"

	"github.com/mpolacek/ufo-sightings/models"
)

// listParams parses the shared ?limit= and ?order= query parameters of the
// listing endpoints. A malformed optional parameter never errors: anything
// that does not parse (or a zero limit) falls back to the route's documented
// default. No upper bound is enforced on limit.
func listParams(r *http.Request, defaultLimit int, defaultOrder models.Order) models.ListParams {
	query := r.URL.Query()

	limit := defaultLimit
	if n, err := strconv.Atoi(query.Get("limit")); err == nil && n != 0 {
		limit = n
	}

	return models.ListParams{
		Limit: limit,
		Order: models.ParseOrder(query.Get("order"), defaultOrder),
	}
}
