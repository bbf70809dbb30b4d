package ports

import "go.trai.ch/cachet/internal/core/domain"

// ConfigLoader defines the interface for loading the cache configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path.
	// An empty path means the default file name in the working directory.
	// A missing file yields the defaults.
	Load(path string) (domain.Config, error)
}
