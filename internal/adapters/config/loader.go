// Package config provides the settings loader for locksmith.
package config

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/locksmith/internal/adapters/fs" //nolint:depguard // settings are read through the shared file system seam
	"go.trai.ch/locksmith/internal/core/domain"
	"go.trai.ch/locksmith/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     fs.FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(fs.NewOSFS(), logger)
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(fsys fs.FileSystem, logger ports.Logger) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Discover walks up from dir to the filesystem root looking for the settings file.
func (l *Loader) Discover(dir string) (string, bool) {
	currentDir := dir
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// Load reads the settings file at path.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(errors.Join(domain.ErrConfigNotFound, err), "path", path)
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	if len(root.Content) == 0 {
		return &domain.Settings{}, nil
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		err := zerr.Wrap(domain.ErrConfigParseFailed, "settings root must be a mapping")
		return nil, zerr.With(zerr.With(err, "path", path), "line", top.Line)
	}
	l.warnUnknownKeys(path, top)

	var dto SettingsDTO
	if err := top.Decode(&dto); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	return toDomain(path, &dto)
}

func (l *Loader) warnUnknownKeys(path string, top *yaml.Node) {
	for i := 0; i+1 < len(top.Content); i += 2 {
		key := top.Content[i].Value
		if _, ok := knownKeys[key]; ok {
			continue
		}
		l.Logger.Warn("ignoring unknown setting", "key", key, "path", path)
	}
}

func toDomain(path string, dto *SettingsDTO) (*domain.Settings, error) {
	settings := &domain.Settings{}

	for _, version := range dto.WantedVersions {
		version = strings.TrimSpace(version)
		if version == "" {
			err := zerr.Wrap(domain.ErrConfigParseFailed, "wanted versions must not be empty")
			return nil, zerr.With(zerr.With(err, "path", path), "field", "wantedVersions")
		}
		settings.WantedVersions = append(settings.WantedVersions, version)
	}
	if dto.IgnoreIncompatible != nil {
		settings.IgnoreIncompatible = domain.Some(*dto.IgnoreIncompatible)
	}
	if dto.UseBranchLockfile != nil {
		settings.UseBranchLockfile = domain.Some(*dto.UseBranchLockfile)
	}
	return settings, nil
}
