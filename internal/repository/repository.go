// filepath: internal/repository/repository.go
package repository

import (
	"context"

	"moviedb/internal/models"
)

// MovieFilter is the normalized, conjunctive filter for catalog queries.
// All set fields combine with AND. It is produced by the catalog service;
// the store translates it into parameterized SQL.
type MovieFilter struct {
	// NormalizedSearch is a substring match against the normalized
	// filename (lower-cased, separator runs stripped on both sides).
	NormalizedSearch string

	// SearchID, when non-empty, widens the search predicate to
	// (original_id = SearchID OR filename-substring-match). Set by the
	// numeric-search heuristic for short all-digit search terms.
	SearchID string

	// Quality is an exact match on the quality column.
	Quality string

	// IsSeries filters on the series flag when non-nil.
	IsSeries *bool
}

// MovieSort is a resolved sort order: a whitelisted request key plus a
// direction. Resolution to column names happens in the store.
type MovieSort struct {
	Key        string
	Descending bool
}

// Repository is the read-only data access surface of the movie catalog.
type Repository interface {
	// CountMovies returns the number of rows matching the filter,
	// ignoring pagination.
	CountMovies(ctx context.Context, f MovieFilter) (int, error)

	// ListMovies returns one page of rows matching the filter.
	ListMovies(ctx context.Context, f MovieFilter, sort MovieSort, limit, offset int) ([]models.Movie, error)

	// GetMovieByID fetches a single row by its external identifier.
	// A missing row is (nil, nil), not an error.
	GetMovieByID(ctx context.Context, id string) (*models.Movie, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	Close()
}
