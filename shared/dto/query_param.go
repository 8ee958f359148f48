package dto

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"beautyhub/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// sortable matches a bare or table-qualified column name. Anything else is
// dropped before it reaches an ORDER BY clause.
var sortable = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// Malformed values are ignored and limit is capped at constant.MaxValueLimit.
// With withDefaults set, a missing page or limit falls back to the defaults.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	values := r.URL.Query()

	if page, err := strconv.Atoi(values.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(values.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := strings.ToLower(values.Get(constant.RequestParamSortBy)); sortable.MatchString(sortBy) {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if withDefaults {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Offset is the number of rows to skip for the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

// OrderBy renders the ORDER BY clause, or an empty string when the sort
// column is missing or not a plain identifier. Direction defaults to DESC.
func (q QueryParams) OrderBy() string {
	if !sortable.MatchString(q.SortBy) {
		return ""
	}

	dir := SortDirDesc
	if strings.ToUpper(q.SortDir) == SortDirAsc {
		dir = SortDirAsc
	}

	return "ORDER BY " + q.SortBy + " " + dir
}
