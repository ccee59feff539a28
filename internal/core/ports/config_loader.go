package ports

import "go.trai.ch/parsnip/internal/core/domain"

// RegistryLoader loads the declared target registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type RegistryLoader interface {
	// Load reads the registry declaration and returns the target registry.
	Load() (*domain.Registry, error)
}
