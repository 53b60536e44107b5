package config

import (
	"errors"
	"fmt"
)

// Settings is the complete ambient configuration of one run.
type Settings struct {
	Log    LogSettings
	Stream StreamSettings
}

// LogSettings selects the slog handler and level.
type LogSettings struct {
	Level  string // debug | info | warn | error
	Format string // text | json
}

// StreamSettings tunes the stream transport.
type StreamSettings struct {
	BufferSize        int
	InputCompression  string
	OutputCompression string
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
		Stream: StreamSettings{
			BufferSize:        64 * 1024,
			InputCompression:  "none",
			OutputCompression: "none",
		},
	}
}

// Validate checks every enumerated field and the buffer size.
func (s *Settings) Validate() error {
	var errs []error

	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", s.Log.Level))
	}

	switch s.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", s.Log.Format))
	}

	if s.Stream.BufferSize < 1 {
		errs = append(errs, fmt.Errorf("invalid buffer size %d: must be at least 1", s.Stream.BufferSize))
	}

	return errors.Join(errs...)
}
