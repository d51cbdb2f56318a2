package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/figvars/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected app.Config
	}{
		{
			name: "positional payload",
			args: []string{"vars.json"},
			expected: app.Config{
				EnvFile: ".env", PayloadPath: "vars.json", LogFormat: "text", LogLevel: "info",
			},
		},
		{
			name: "every flag",
			args: []string{
				"-config", "figvars.hcl", "-env-file", "", "-file-key", "KEY", "-asset-url", "https://a/b",
				"-api-base", "http://localhost:1", "-format", "PALETTE", "-mode", "Dark", "-editing",
				"-search", "brand", "-group", "Color/Red", "-backrefs", "last", "-serve-port", "8080",
				"-log-format", "json", "-log-level", "DEBUG",
			},
			expected: app.Config{
				ConfigPath: "figvars.hcl", FileKey: "KEY", AssetURL: "https://a/b", APIBase: "http://localhost:1",
				Format: "palette", Mode: "Dark", Editing: true, Search: "brand", Group: "Color/Red", Backrefs: "last",
				ServePort: 8080, LogFormat: "json", LogLevel: "debug",
			},
		},
		{
			name: "config shorthand",
			args: []string{"-c", "conf"},
			expected: app.Config{
				ConfigPath: "conf", EnvFile: ".env", LogFormat: "text", LogLevel: "info",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tc.expected, *cfg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "PAYLOAD_PATH")
}

func TestParse_NoArgs(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "unknown flag", args: []string{"-nope"}, contains: "flag provided but not defined"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, contains: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud"}, contains: "invalid log-level"},
		{name: "bad format", args: []string{"-format", "pdf"}, contains: "invalid format"},
		{name: "bad backrefs", args: []string{"-backrefs", "first"}, contains: "invalid backref policy"},
		{name: "two payloads", args: []string{"a.json", "b.json"}, contains: "at most one PAYLOAD_PATH"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.contains)
		})
	}
}
