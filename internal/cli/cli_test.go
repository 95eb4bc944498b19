package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/internal/cli"
	"github.com/katalvlaran/flyover/internal/config"
)

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := cli.Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, config.Default(), *cfg)
}

func TestParse_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flyover.hcl")
	src := `
listen = ":7000"
log {
  level = "warn"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, _, err := cli.Parse([]string{"-config", path, "-log-level", "DEBUG", "-runner-url", "http://drone:5000"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Listen, "file value kept")
	assert.Equal(t, "debug", cfg.LogLevel, "flag wins")
	assert.Equal(t, "http://drone:5000", cfg.RunnerURL)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-port", "1"}},
		{"positional", []string{"extra"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"bad format", []string{"-log-format", "xml"}},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "nope.hcl")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := cli.Parse(tc.args, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestParse_SecretFromEnv(t *testing.T) {
	t.Setenv(cli.EnvJWTSecret, "from-env")
	cfg, _, err := cli.Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}
