// internal/api/handlers/health_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"moviedb/internal/logging"
)

// HealthCheck is a simple public endpoint to confirm the server is running.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// HealthCheckDB confirms the database pool is reachable.
func (h *Handlers) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		logging.Log.Errorf("Database health check failed: %v", err)
		respondWithError(w, http.StatusServiceUnavailable, "Database unreachable.")
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}
