// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/parsnip/internal/adapters/config"
	_ "go.trai.ch/parsnip/internal/adapters/fs"
	_ "go.trai.ch/parsnip/internal/adapters/logger"
	_ "go.trai.ch/parsnip/internal/adapters/shell"
	_ "go.trai.ch/parsnip/internal/adapters/telemetry"
	_ "go.trai.ch/parsnip/internal/adapters/term"
	_ "go.trai.ch/parsnip/internal/adapters/toolchain"
	// Register app and engine nodes.
	_ "go.trai.ch/parsnip/internal/app"
	_ "go.trai.ch/parsnip/internal/engine/pipeline"
	_ "go.trai.ch/parsnip/internal/engine/revision"
)
