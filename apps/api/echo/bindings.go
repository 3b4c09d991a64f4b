package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"courseboard/core"
)

const (
	searchParam = "search"
	sortParam   = "sort"
	orderParam  = "order"
)

// bindFilter builds a QueryFilter from the request's search/sort/order
// parameters. sort is checked against the resource's column allow-list and
// order against {asc, desc}; anything else silently falls back to the
// default ordering so user input never reaches an SQL identifier position.
func bindFilter(ctx echo.Context, defaultOrd core.DBOrdering, allowedSort ...string) core.QueryFilter {
	filter := core.QueryFilter{
		Search:   strings.TrimSpace(ctx.QueryParam(searchParam)),
		Ordering: defaultOrd,
	}

	if sort := ctx.QueryParam(sortParam); sort != "" {
		for _, col := range allowedSort {
			if sort == col {
				filter.Ordering.Field = col
				break
			}
		}
	}
	switch strings.ToLower(ctx.QueryParam(orderParam)) {
	case "asc":
		filter.Ordering.Ascending = true
	case "desc":
		filter.Ordering.Ascending = false
	}
	return filter
}
