// filepath: internal/services/info_service.go
package services

import (
	"time"

	"moviedb/internal/models"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Version     string
	Environment string
	StartTime   time.Time
}

// NewInfoService creates a new InfoService.
func NewInfoService(version string, environment string, startTime time.Time) *infoService {
	return &infoService{
		Version:     version,
		Environment: environment,
		StartTime:   startTime,
	}
}

// GetInfo retrieves the application information.
func (s *infoService) GetInfo() models.Info {
	return models.Info{
		ServiceName: "MovieDB Catalog API",
		Version:     s.Version,
		Environment: s.Environment,
		UptimeSince: s.StartTime,
	}
}
