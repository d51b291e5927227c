// filepath: internal/api/router_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moviedb/internal/api/handlers"
	"moviedb/internal/config"
	"moviedb/internal/models"
	"moviedb/internal/services/mocks"
)

func setupTestRouter(t *testing.T) (*httptest.Server, *mocks.MockMovieService, func()) {
	t.Helper()

	mockMovies := new(mocks.MockMovieService)
	mockInfo := new(mocks.MockInfoService)
	mockInfo.On("GetInfo").Return(models.Info{
		ServiceName: "test",
		Version:     "test",
		Environment: config.EnvDevelopment,
		UptimeSince: time.Now(),
	}).Maybe()

	h := handlers.NewHandlers(mockMovies, mockInfo, nil, &config.Config{Environment: config.EnvProduction})
	server := httptest.NewServer(SetupRouter(h))

	return server, mockMovies, server.Close
}

func TestRouter_OptionsPreflight(t *testing.T) {
	server, _, cleanup := setupTestRouter(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/api/movies", nil)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))

	body := make([]byte, 1)
	n, _ := resp.Body.Read(body)
	assert.Zero(t, n, "pre-flight response must have no body")
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	server, _, cleanup := setupTestRouter(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodPost, server.URL+"/api/movies", nil)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "GET, OPTIONS", resp.Header.Get("Allow"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var errResp handlers.ErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "Method POST Not Allowed", errResp.Error)
}

func TestRouter_MoviesEndpointCORSHeaders(t *testing.T) {
	server, mockMovies, cleanup := setupTestRouter(t)
	defer cleanup()

	mockMovies.On("QueryMovies", mock.Anything, mock.Anything).
		Return(&models.MoviePage{Items: []models.Movie{}}, nil).Once()

	resp, err := http.Get(server.URL + "/api/movies")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	mockMovies.AssertExpectations(t)
}

func TestRouter_HealthCheck(t *testing.T) {
	server, _, cleanup := setupTestRouter(t)
	defer cleanup()

	resp, err := http.Get(server.URL + "/health")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Info(t *testing.T) {
	server, _, cleanup := setupTestRouter(t)
	defer cleanup()

	resp, err := http.Get(server.URL + "/api/info")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var info models.Info
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "test", info.Version)
}
