// filepath: internal/api/router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"moviedb/internal/api/handlers"
)

// SetupRouter configures the main router: the catalog query endpoint plus
// the public health and info endpoints.
func SetupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	r.Use(RequestLogger)
	r.Use(CORS)

	// Method-mismatch matches bypass router middleware, so the 405
	// handler gets its CORS headers from an explicit wrap.
	r.MethodNotAllowedHandler = CORS(http.HandlerFunc(h.MethodNotAllowed))

	// Public Endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/health/db", h.HealthCheckDB).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/info", h.GetInfo).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/movies", h.QueryMovies).Methods(http.MethodGet, http.MethodOptions)

	return r
}
