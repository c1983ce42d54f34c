package ports

import "go.trai.ch/glimpse/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds glimpse.yaml in dir or one of its parents and returns the project it describes.
	// It returns domain.ErrConfigNotFound when no config file exists.
	Load(dir string) (domain.Project, error)
}
