package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/trfilter/internal/app"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		env            map[string]string
		expectErr      bool
		expectedConfig *app.Config
		checkMessage   func(t *testing.T, msg string)
	}{
		{
			name:           "Translate",
			args:           []string{"abc", "xyz"},
			expectedConfig: &app.Config{Mode: app.ModeTranslate, Set1: "abc", Set2: "xyz"},
		},
		{
			name:           "Translate with truncation",
			args:           []string{"-t", "abcd", "xy"},
			expectedConfig: &app.Config{Mode: app.ModeTranslate, Set1: "abcd", Set2: "xy", Truncate: true},
		},
		{
			name:           "Delete",
			args:           []string{"-d", "aeiou"},
			expectedConfig: &app.Config{Mode: app.ModeDelete, Set1: "aeiou"},
		},
		{
			name:           "Delete set may be a lone dash",
			args:           []string{"-d", "-"},
			expectedConfig: &app.Config{Mode: app.ModeDelete, Set1: "-"},
		},
		{
			name:           "Truncate takes its sets literally",
			args:           []string{"-t", "-d", "a"},
			expectedConfig: &app.Config{Mode: app.ModeTranslate, Set1: "-d", Set2: "a", Truncate: true},
		},
		{
			name: "Environment settings",
			args: []string{"a", "b"},
			env: map[string]string{
				EnvSettings:  "/etc/tr.hcl",
				EnvLogLevel:  "DEBUG",
				EnvLogFormat: "json",
			},
			expectedConfig: &app.Config{
				Mode:         app.ModeTranslate,
				Set1:         "a",
				Set2:         "b",
				SettingsPath: "/etc/tr.hcl",
				LogLevel:     "debug",
				LogFormat:    "json",
			},
		},
		{name: "No arguments", args: []string{}, expectErr: true},
		{name: "One argument", args: []string{"abc"}, expectErr: true},
		{name: "Three positional arguments", args: []string{"a", "b", "c"}, expectErr: true},
		{name: "Truncate with one set", args: []string{"-t", "abc"}, expectErr: true},
		{name: "Delete with two sets", args: []string{"-d", "a", "b"}, expectErr: true},
		{name: "Delete without set", args: []string{"-d"}, expectErr: true},
		{name: "Delete then truncate", args: []string{"-d", "-t", "a"}, expectErr: true},
		{name: "Truncate spelled with a value", args: []string{"-t=false", "abc", "xyz"}, expectErr: true},
		{name: "Delete spelled with a value", args: []string{"-d=false", "a", "b"}, expectErr: true},
		{name: "Delete with double-dash prefix", args: []string{"--d", "abc"}, expectErr: true},
		{name: "Repeated truncate", args: []string{"-t", "-t", "a", "b"}, expectErr: true},
		{name: "Double dash terminator", args: []string{"--", "-a", "b"}, expectErr: true},
		{name: "Translate set starting with dash", args: []string{"-a", "b"}, expectErr: true},
		{name: "Lone dash as translate source", args: []string{"-", "b"}, expectErr: true},
		{
			name:      "Unknown flag",
			args:      []string{"-x", "a", "b"},
			expectErr: true,
			checkMessage: func(t *testing.T, msg string) {
				require.Contains(t, msg, "unknown option: -x")
				require.Contains(t, msg, "usage: tr")
			},
		},
		{
			name:      "Help flag",
			args:      []string{"--help"},
			expectErr: true,
			checkMessage: func(t *testing.T, msg string) {
				require.Equal(t, Usage, msg)
			},
		},
		{
			name:      "Invalid log level",
			args:      []string{"a", "b"},
			env:       map[string]string{EnvLogLevel: "loud"},
			expectErr: true,
			checkMessage: func(t *testing.T, msg string) {
				require.Contains(t, msg, "invalid TR_LOG_LEVEL")
			},
		},
		{
			name:      "Invalid log format",
			args:      []string{"a", "b"},
			env:       map[string]string{EnvLogFormat: "xml"},
			expectErr: true,
			checkMessage: func(t *testing.T, msg string) {
				require.Contains(t, msg, "invalid TR_LOG_FORMAT")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			config, err := Parse(tc.args, envOf(tc.env))

			if tc.expectErr {
				require.Error(t, err)
				require.Nil(t, config)
				exitErr, ok := err.(*ExitError)
				require.True(t, ok, "error should be an *ExitError")
				require.Equal(t, 1, exitErr.Code)
				if tc.checkMessage != nil {
					tc.checkMessage(t, exitErr.Message)
				}
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tc.expectedConfig, config); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
