// filepath: internal/services/mocks/repository_mock.go
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"moviedb/internal/models"
	"moviedb/internal/repository"
)

// MockRepository is a mock implementation of repository.Repository
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) CountMovies(ctx context.Context, f repository.MovieFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) ListMovies(ctx context.Context, f repository.MovieFilter, sort repository.MovieSort, limit, offset int) ([]models.Movie, error) {
	args := m.Called(ctx, f, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockRepository) GetMovieByID(ctx context.Context, id string) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) Close() {
	m.Called()
}
