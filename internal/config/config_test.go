package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flyover/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.RunnerURL, "missions are off unless configured")
	assert.Equal(t, 200*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 400*time.Millisecond, cfg.PlaybackInterval)
}

func TestParse_Overrides(t *testing.T) {
	src := `
listen   = "127.0.0.1:9000"
database = "/var/lib/flyover/state.db"

log {
  level  = "DEBUG"
  format = "text"
}

runner {
  url           = " http://10.0.0.2:5000 "
  timeout       = "3s"
  poll_interval = "250ms"
}

planner {
  obstacle_blocking        = false
  distance_cache_max_nodes = 0
}

auth {
  jwt_secret = "s3cret"
}
`
	cfg, err := config.Parse("flyover.hcl", []byte(src))
	require.NoError(t, err)

	want := config.Default()
	want.Listen = "127.0.0.1:9000"
	want.Database = "/var/lib/flyover/state.db"
	want.LogLevel = "debug"
	want.LogFormat = "text"
	want.RunnerURL = "http://10.0.0.2:5000"
	want.RunnerTimeout = 3 * time.Second
	want.PollInterval = 250 * time.Millisecond
	want.ObstacleBlocking = false
	want.DistanceCacheMaxNodes = 0
	want.JWTSecret = "s3cret"
	assert.Equal(t, want, cfg)
}

func TestParse_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse("empty.hcl", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", `listen = `},
		{"unknown attribute", `port = 8080`},
		{"wrong type", `keep_snapshots = "many"`},
		{"bad duration", "runner {\n timeout = \"soon\"\n}"},
		{"zero duration", "playback {\n interval = \"0s\"\n}"},
		{"bad level", "log {\n level = \"loud\"\n}"},
		{"bad format", "log {\n format = \"xml\"\n}"},
		{"negative keep", `keep_snapshots = -1`},
		{"empty listen", `listen = ""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse("flyover.hcl", []byte(tc.src))
			assert.Error(t, err)
		})
	}
}

func TestParse_EnvReference(t *testing.T) {
	t.Setenv("FLYOVER_TEST_DB", "/data/flyover.db")
	src := `
database = env.FLYOVER_TEST_DB
listen   = "127.0.0.1:${env.FLYOVER_TEST_PORT}"
`
	t.Setenv("FLYOVER_TEST_PORT", "9100")

	cfg, err := config.Parse("flyover.hcl", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, "/data/flyover.db", cfg.Database)
	assert.Equal(t, "127.0.0.1:9100", cfg.Listen)

	_, err = config.Parse("flyover.hcl", []byte(`database = env.FLYOVER_TEST_UNSET_VARIABLE`))
	assert.Error(t, err, "unknown variables are reported")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flyover.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`keep_snapshots = 3`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.KeepSnapshots)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
