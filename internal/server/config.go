package server

import "github.com/petalgen/petal/internal/logging"

// Config controls the preview server.
type Config struct {
	// Root is the generated site root to serve.
	Root string

	// Ports is the ladder tried in order until one is free. Mirrors the
	// ports the team has always used for local preview.
	Ports []int

	// Generate, when set, is invoked by POST /api/generate; a successful
	// run is broadcast to websocket clients as a reload event.
	Generate func() (int, error)

	Logger logging.Logger
}

// DefaultPorts is the historical local-preview ladder.
var DefaultPorts = []int{3000, 3001, 3080}
