// filepath: internal/api/handlers/movie_handler_test.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moviedb/internal/config"
	"moviedb/internal/models"
	"moviedb/internal/services/mocks"
)

// setupMoviesTestAPI creates a test server around the movies endpoint and
// a cleanup function.
func setupMoviesTestAPI(t *testing.T, cfg *config.Config) (*httptest.Server, *mocks.MockMovieService, func()) {
	t.Helper()

	mockMovies := new(mocks.MockMovieService)
	h := NewHandlers(mockMovies, nil, nil, cfg)

	r := mux.NewRouter()
	r.HandleFunc("/api/movies", h.QueryMovies).Methods(http.MethodGet)

	server := httptest.NewServer(r)

	cleanup := func() {
		server.Close()
	}

	return server, mockMovies, cleanup
}

func TestQueryMoviesAPI_Success(t *testing.T) {
	server, mockMovies, cleanup := setupMoviesTestAPI(t, &config.Config{Environment: config.EnvProduction})
	defer cleanup()

	expectedQuery := models.MovieQuery{
		Search:  "the movie",
		Quality: "1080p",
		Type:    "series",
		Sort:    "size",
		SortDir: "asc",
		Page:    "2",
		Limit:   "10",
	}
	page := &models.MoviePage{
		Items:      []models.Movie{{OriginalID: "42", Filename: "The.Movie.S01E01.mkv", IsSeries: true}},
		TotalItems: 11,
		Page:       2,
		TotalPages: 2,
		Limit:      10,
		Filters:    models.QueryFilters{Search: "the movie", Quality: "1080p", Type: "series"},
		Sorting:    models.QuerySorting{Sort: "size", SortDir: "asc"},
	}
	mockMovies.On("QueryMovies", mock.Anything, expectedQuery).Return(page, nil).Once()

	resp, err := http.Get(server.URL + "/api/movies?search=the+movie&quality=1080p&type=series&sort=size&sortDir=asc&page=2&limit=10")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got models.MoviePage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 11, got.TotalItems)
	assert.Equal(t, 2, got.TotalPages)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, "42", got.Items[0].OriginalID)
	assert.Equal(t, "the movie", got.Filters.Search)
	assert.Equal(t, "asc", got.Sorting.SortDir)
	mockMovies.AssertExpectations(t)
}

func TestQueryMoviesAPI_DatabaseErrorProduction(t *testing.T) {
	server, mockMovies, cleanup := setupMoviesTestAPI(t, &config.Config{Environment: config.EnvProduction})
	defer cleanup()

	mockMovies.On("QueryMovies", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	resp, err := http.Get(server.URL + "/api/movies")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Failed to fetch movie data from database.", errResp.Error)
	// Production hides the raw database error.
	assert.Equal(t, "Internal server error.", errResp.Details)
	mockMovies.AssertExpectations(t)
}

func TestQueryMoviesAPI_DatabaseErrorDevelopment(t *testing.T) {
	server, mockMovies, cleanup := setupMoviesTestAPI(t, &config.Config{Environment: config.EnvDevelopment})
	defer cleanup()

	mockMovies.On("QueryMovies", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	resp, err := http.Get(server.URL + "/api/movies")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "connection refused", errResp.Details)
	mockMovies.AssertExpectations(t)
}
