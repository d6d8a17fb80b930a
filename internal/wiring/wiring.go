// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "dacsmoke/internal/adapters/alsa"
	_ "dacsmoke/internal/adapters/fs"
	_ "dacsmoke/internal/adapters/locator"
	_ "dacsmoke/internal/adapters/logger"
	_ "dacsmoke/internal/adapters/platform"
	_ "dacsmoke/internal/adapters/shell"
	// Register app and engine nodes.
	_ "dacsmoke/internal/app"
	_ "dacsmoke/internal/engine/player"
)
