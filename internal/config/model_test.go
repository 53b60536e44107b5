package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(s *Settings)
		contains []string
	}{
		{
			name:     "bad level",
			mutate:   func(s *Settings) { s.Log.Level = "trace" },
			contains: []string{`invalid log level "trace"`},
		},
		{
			name:     "bad format",
			mutate:   func(s *Settings) { s.Log.Format = "xml" },
			contains: []string{`invalid log format "xml"`},
		},
		{
			name:     "zero buffer",
			mutate:   func(s *Settings) { s.Stream.BufferSize = 0 },
			contains: []string{"invalid buffer size 0"},
		},
		{
			name: "all errors reported",
			mutate: func(s *Settings) {
				s.Log.Level = ""
				s.Log.Format = ""
				s.Stream.BufferSize = -1
			},
			contains: []string{"invalid log level", "invalid log format", "invalid buffer size -1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := Default()
			tc.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			for _, want := range tc.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
