// filepath: internal/services/mocks/movie_mock.go
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moviedb/internal/models"
	"moviedb/internal/services"
)

// MockMovieService is a mock implementation of services.MovieService
type MockMovieService struct {
	mock.Mock
}

var _ services.MovieService = (*MockMovieService)(nil)

func (m *MockMovieService) QueryMovies(ctx context.Context, q models.MovieQuery) (*models.MoviePage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoviePage), args.Error(1)
}
