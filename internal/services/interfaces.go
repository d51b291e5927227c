// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"moviedb/internal/models"
)

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// MovieService defines the interface for the catalog query service.
type MovieService interface {
	// QueryMovies translates raw request parameters into a filtered,
	// sorted, paginated catalog query and returns the response envelope.
	QueryMovies(ctx context.Context, q models.MovieQuery) (*models.MoviePage, error)
}
