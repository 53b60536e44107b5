package app

import "errors"

// Mode selects the stream transform.
type Mode int

const (
	ModeTranslate Mode = iota
	ModeDelete
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeTranslate:
		return "translate"
	case ModeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Config holds everything the command line and environment decided for a run.
type Config struct {
	Mode     Mode
	Set1     string // source set, or the deletion set
	Set2     string // target set, translate only
	Truncate bool

	SettingsPath string // optional HCL settings file
	LogLevel     string // overrides the settings file when set
	LogFormat    string // overrides the settings file when set
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Mode {
	case ModeTranslate:
	case ModeDelete:
		if cfg.Truncate {
			return nil, errors.New("truncation is only valid in translate mode")
		}
		if cfg.Set2 != "" {
			return nil, errors.New("delete mode takes a single set")
		}
	default:
		return nil, errors.New("unknown mode")
	}
	return &cfg, nil
}
