package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/trfilter/internal/config"
	"github.com/specialistvlad/trfilter/internal/ctxlog"
	"github.com/specialistvlad/trfilter/internal/stream"
)

// App encapsulates the run's logger, settings and stream options.
type App struct {
	logger   *slog.Logger
	settings *config.Settings
	runID    string

	bufferSize int
	inputComp  stream.Compression
	outputComp stream.Compression
}

// NewApp loads and validates the ambient settings for cfg. Logs go to errW.
// loader may be nil when cfg.SettingsPath is empty.
func NewApp(errW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	runID := uuid.NewString()
	// Settings are not known yet, so the loader logs through a bootstrap
	// logger honoring only the overrides.
	boot := newLogger(config.LogSettings{Level: cfg.LogLevel, Format: cfg.LogFormat}, runID, errW)
	ctx := ctxlog.WithLogger(context.Background(), boot)

	settings := config.Default()
	if cfg.SettingsPath != "" {
		if loader == nil {
			return nil, fmt.Errorf("no loader for settings file %s", cfg.SettingsPath)
		}
		loaded, err := loader.Load(ctx, cfg.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
	}
	if cfg.LogLevel != "" {
		settings.Log.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		settings.Log.Format = cfg.LogFormat
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	inputComp, err := stream.ParseCompression(settings.Stream.InputCompression)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: input: %w", err)
	}
	outputComp, err := stream.ParseCompression(settings.Stream.OutputCompression)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: output: %w", err)
	}

	logger := newLogger(settings.Log, runID, errW)
	logger.Debug("Settings resolved.",
		"settings_path", cfg.SettingsPath,
		"log_level", settings.Log.Level,
		"buffer_size", settings.Stream.BufferSize,
		"input_compression", inputComp,
		"output_compression", outputComp,
	)

	return &App{
		logger:     logger,
		settings:   settings,
		runID:      runID,
		bufferSize: settings.Stream.BufferSize,
		inputComp:  inputComp,
		outputComp: outputComp,
	}, nil
}

// Settings returns the resolved settings. This is primarily for testing.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// RunID returns the id attached to every log record of this run.
func (a *App) RunID() string {
	return a.runID
}
