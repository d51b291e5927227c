// filepath: internal/services/catalog_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"moviedb/internal/config"
	"moviedb/internal/logging"
	"moviedb/internal/models"
	"moviedb/internal/repository"
)

const (
	defaultSortKey = "lastUpdated"
	defaultSortDir = "desc"
)

var _ MovieService = (*catalogService)(nil)

type catalogService struct {
	repo repository.Repository

	// maxIDSearchDigits is the numeric-search heuristic threshold, see
	// config.CatalogConfig.
	maxIDSearchDigits int
	defaultLimit      int
	maxLimit          int
}

// NewCatalogService creates a new MovieService backed by the given store.
func NewCatalogService(repo repository.Repository, cfg *config.Config) *catalogService {
	return &catalogService{
		repo:              repo,
		maxIDSearchDigits: cfg.Catalog.MaxIDSearchDigits,
		defaultLimit:      cfg.Catalog.DefaultLimit,
		maxLimit:          cfg.Catalog.MaxLimit,
	}
}

// QueryMovies runs the count and data queries for one request and shapes
// the paginated envelope. An id parameter degenerates the request into an
// exact single-record lookup; every other filter is skipped entirely.
func (s *catalogService) QueryMovies(ctx context.Context, q models.MovieQuery) (*models.MoviePage, error) {
	page := normalizePage(q.Page)
	limit := normalizeLimit(q.Limit, s.defaultLimit, s.maxLimit)
	offset := (page - 1) * limit

	envelope := &models.MoviePage{
		Items: []models.Movie{},
		Page:  page,
		Limit: limit,
		Filters: models.QueryFilters{
			Search:  q.Search,
			Quality: q.Quality,
			Type:    q.Type,
		},
		Sorting: models.QuerySorting{
			Sort:    sortKeyOrDefault(q.Sort),
			SortDir: sortDirOrDefault(q.SortDir),
		},
	}

	if q.ID != "" {
		movie, err := s.repo.GetMovieByID(ctx, q.ID)
		if err != nil {
			return nil, fmt.Errorf("movie lookup failed: %w", err)
		}
		if movie != nil {
			envelope.Items = append(envelope.Items, *movie)
		}
		// Total reflects the rows actually found (0 or 1); the lookup is
		// always a single page.
		envelope.TotalItems = len(envelope.Items)
		envelope.TotalPages = 1
		return envelope, nil
	}

	filter := s.buildFilter(q)
	sort := repository.MovieSort{
		Key:        sortKeyOrDefault(q.Sort),
		Descending: !strings.EqualFold(q.SortDir, "asc"),
	}

	total, err := s.repo.CountMovies(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("movie count failed: %w", err)
	}
	envelope.TotalItems = total
	envelope.TotalPages = (total + limit - 1) / limit

	// Out-of-range page: the count already tells us the data query would
	// come back empty, so skip it.
	if total > 0 && offset >= total {
		logging.Log.Debugf("QueryMovies: offset %d beyond total %d, skipping data query", offset, total)
		return envelope, nil
	}

	movies, err := s.repo.ListMovies(ctx, filter, sort, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("movie list failed: %w", err)
	}
	envelope.Items = movies

	return envelope, nil
}

// buildFilter evaluates the filter decision tree for a request without an
// id parameter. Search, quality and type predicates are independent and
// combine with AND.
func (s *catalogService) buildFilter(q models.MovieQuery) repository.MovieFilter {
	var f repository.MovieFilter

	trimmed := strings.TrimSpace(q.Search)
	if trimmed != "" {
		if isAllDigits(trimmed) && len(trimmed) < s.maxIDSearchDigits {
			// Short digit strings are ambiguous: they may be an external
			// id or a numeric fragment of a filename. Match both.
			f.SearchID = trimmed
			f.NormalizedSearch = trimmed
		} else if normalized := NormalizeSearchText(trimmed); normalized != "" {
			f.NormalizedSearch = normalized
		}
		// A search consisting only of separators normalizes to nothing
		// and adds no predicate.
	}

	if q.Quality != "" {
		f.Quality = q.Quality
	}

	switch q.Type {
	case "movies":
		isSeries := false
		f.IsSeries = &isSeries
	case "series":
		isSeries := true
		f.IsSeries = &isSeries
	}

	return f
}

func sortKeyOrDefault(sort string) string {
	if sort == "" {
		return defaultSortKey
	}
	return sort
}

func sortDirOrDefault(dir string) string {
	if strings.EqualFold(dir, "asc") {
		return "asc"
	}
	return defaultSortDir
}
