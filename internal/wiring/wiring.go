// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/locksmith/internal/adapters/config"
	_ "go.trai.ch/locksmith/internal/adapters/fs"
	_ "go.trai.ch/locksmith/internal/adapters/git"
	_ "go.trai.ch/locksmith/internal/adapters/gitmerge"
	_ "go.trai.ch/locksmith/internal/adapters/logger"
	_ "go.trai.ch/locksmith/internal/adapters/semver"
	_ "go.trai.ch/locksmith/internal/adapters/yamlcodec"
	// Register app and engine nodes.
	_ "go.trai.ch/locksmith/internal/app"
	_ "go.trai.ch/locksmith/internal/engine/compat"
	_ "go.trai.ch/locksmith/internal/engine/reader"
)
