package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string

	// Chunk dimensions used for the smoke instantiation in Run.
	ChunkSizeX int
	ChunkSizeY int
	ChunkSizeZ int

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.ChunkSizeX <= 0 || cfg.ChunkSizeY <= 0 || cfg.ChunkSizeZ <= 0 {
		return nil, errors.New("chunk dimensions must be positive")
	}
	return &cfg, nil
}
