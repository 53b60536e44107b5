package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/specialistvlad/trfilter/internal/app"
)

// Environment variables read by Parse.
const (
	EnvSettings  = "TR_CONFIG"
	EnvLogLevel  = "TR_LOG_LEVEL"
	EnvLogFormat = "TR_LOG_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Usage is printed for every malformed command line.
const Usage = `usage: tr [-t | -d] <arg1> [arg2]
	arg1: old letters to replace, or letters to delete with -d
	arg2: new letters to replace old with
	-t: truncate arg1 to the length of arg2
	-d: delete specified character(s)`

// isOption reports whether arg is spelled like an option. A lone "-" is not.
func isOption(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// knownOption reports whether arg is -t, -d or a help spelling, which all
// fall back to the plain usage text when misplaced.
func knownOption(arg string) bool {
	switch arg {
	case "-t", "-d", "-h", "-help", "--help":
		return true
	}
	return false
}

func usageError(reason string) *ExitError {
	msg := Usage
	if reason != "" {
		msg = reason + "\n" + Usage
	}
	return &ExitError{Code: 1, Message: msg}
}

// Parse accepts exactly these shapes:
//
//	tr <old> <new>
//	tr -t <old> <new>
//	tr -d <set>
//
// Anything else is an *ExitError with code 1. getenv supplies the TR_*
// variables.
func Parse(args []string, getenv func(string) string) (*app.Config, error) {
	slog.Debug("CLI parser started.", "nargs", len(args))

	cfg := app.Config{
		SettingsPath: getenv(EnvSettings),
		LogLevel:     strings.ToLower(getenv(EnvLogLevel)),
		LogFormat:    strings.ToLower(getenv(EnvLogFormat)),
	}

	// Shapes are matched token by token; flag-style spellings such as
	// "-t=false", "--d" or "--" are not accepted.
	switch {
	case len(args) == 3 && args[0] == "-t":
		cfg.Mode = app.ModeTranslate
		cfg.Set1, cfg.Set2 = args[1], args[2]
		cfg.Truncate = true
	case len(args) == 2 && args[0] == "-d":
		cfg.Mode = app.ModeDelete
		cfg.Set1 = args[1]
	case len(args) == 2 && !strings.HasPrefix(args[0], "-"):
		cfg.Mode = app.ModeTranslate
		cfg.Set1, cfg.Set2 = args[0], args[1]
	case len(args) > 0 && isOption(args[0]) && !knownOption(args[0]):
		return nil, usageError(fmt.Sprintf("unknown option: %s", args[0]))
	default:
		return nil, usageError("")
	}
	slog.Debug("Arguments matched.", "mode", cfg.Mode, "truncate", cfg.Truncate)

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("invalid %s: must be 'debug', 'info', 'warn', or 'error'", EnvLogLevel)}
	}
	switch cfg.LogFormat {
	case "", "text", "json":
		// valid
	default:
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("invalid %s: must be 'text' or 'json'", EnvLogFormat)}
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, usageError(err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "mode", config.Mode)
	return config, nil
}
