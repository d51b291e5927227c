// filepath: internal/repository/postgres/query.go
package postgres

import (
	"github.com/Masterminds/squirrel"

	"moviedb/internal/repository"
)

// psql builds statements with $1-style placeholders for PostgreSQL.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// normalizedFilename is the in-database counterpart of the search text
// normalizer: lower-case, then strip every run of '.', '_', '-' and
// whitespace. Both sides of the comparison must use the same rule, so
// "The.Movie_2020" matches a search for "the movie 2020".
const normalizedFilename = `regexp_replace(lower(filename), '[._[:space:]-]+', '', 'g')`

// movieColumns is the scan order used by every row-returning query.
var movieColumns = []string{
	"original_id",
	"filename",
	"size_bytes",
	"quality",
	"last_updated_ts",
	"is_series",
	"download_link",
	"stream_link",
	"language",
}

// sortColumns whitelists the request sort keys. Lookup is case-sensitive;
// anything else falls back to the last-updated column.
var sortColumns = map[string]string{
	"id":          "original_id",
	"filename":    "lower(filename)",
	"size":        "size_bytes",
	"quality":     "quality",
	"lastUpdated": "last_updated_ts",
}

const defaultSortColumn = "last_updated_ts"

// buildPredicate translates a MovieFilter into a conjunction of
// parameterized predicates. User values only ever travel as bind
// arguments, never as query text.
func buildPredicate(f repository.MovieFilter) squirrel.And {
	pred := squirrel.And{}

	if f.NormalizedSearch != "" {
		match := squirrel.Expr(normalizedFilename+" ILIKE ?", "%"+f.NormalizedSearch+"%")
		if f.SearchID != "" {
			// Dual-intent numeric search: the term may be an id or a
			// numeric substring of a filename.
			pred = append(pred, squirrel.Or{squirrel.Eq{"original_id": f.SearchID}, match})
		} else {
			pred = append(pred, match)
		}
	}

	if f.Quality != "" {
		pred = append(pred, squirrel.Eq{"quality": f.Quality})
	}

	if f.IsSeries != nil {
		pred = append(pred, squirrel.Eq{"is_series": *f.IsSeries})
	}

	return pred
}

// buildCountQuery renders the count statement for a filter.
func buildCountQuery(f repository.MovieFilter) (string, []interface{}, error) {
	query := psql.Select("COUNT(*)").From("movies")
	if pred := buildPredicate(f); len(pred) > 0 {
		query = query.Where(pred)
	}
	return query.ToSql()
}

// buildListQuery renders the data statement for one page of a filter.
func buildListQuery(f repository.MovieFilter, sort repository.MovieSort, limit, offset int) (string, []interface{}, error) {
	query := psql.Select(movieColumns...).From("movies")
	if pred := buildPredicate(f); len(pred) > 0 {
		query = query.Where(pred)
	}
	query = query.
		OrderBy(orderClauses(sort)...).
		Limit(uint64(limit)).
		Offset(uint64(offset))
	return query.ToSql()
}

// buildLookupQuery renders the exact-id statement. No ORDER BY: the id is
// unique, at most one row comes back.
func buildLookupQuery(id string) (string, []interface{}, error) {
	return psql.Select(movieColumns...).
		From("movies").
		Where(squirrel.Eq{"original_id": id}).
		Limit(1).
		ToSql()
}

// orderClauses resolves a sort request into ORDER BY expressions with a
// deterministic original_id tiebreak in the same direction. size_bytes may
// be NULL, so sorting by size pushes missing sizes to the end.
func orderClauses(sort repository.MovieSort) []string {
	column, ok := sortColumns[sort.Key]
	if !ok {
		column = defaultSortColumn
	}

	dir := "ASC"
	if sort.Descending {
		dir = "DESC"
	}

	primary := column + " " + dir
	if column == "size_bytes" {
		primary += " NULLS LAST"
	}

	return []string{primary, "original_id " + dir}
}
