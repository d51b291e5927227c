// filepath: internal/services/mocks/info_mock.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"moviedb/internal/models"
	"moviedb/internal/services"
)

// MockInfoService is a mock implementation of services.InfoService
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() models.Info {
	args := m.Called()
	return args.Get(0).(models.Info)
}
