package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and returns it layered over
	// Default(). Attributes missing from the file keep their default value.
	Load(ctx context.Context, path string) (*Settings, error)
}
