package ports

import "go.trai.ch/locksmith/internal/core/domain"

// SettingsLoader defines the interface for locating and loading the settings file.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Discover walks up from dir and returns the nearest settings file.
	Discover(dir string) (path string, found bool)

	// Load reads the settings file at path.
	// It returns domain.ErrConfigNotFound when the file does not exist.
	Load(path string) (*domain.Settings, error)
}
