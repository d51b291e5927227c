// filepath: internal/api/handlers/main.go
package handlers

import (
	"moviedb/internal/config"
	"moviedb/internal/repository"
	"moviedb/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers,
// such as the catalog service.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Movies services.MovieService
	Info   services.InfoService

	// Store is only consulted by the database health endpoint.
	Store repository.Repository

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	movies services.MovieService,
	info services.InfoService,
	store repository.Repository,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Movies: movies,
		Info:   info,
		Store:  store,
		Cfg:    cfg,
	}
}
