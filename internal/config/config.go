// Package config loads the service configuration from an HCL file.
//
// Every setting has a default; a file only needs the values it changes:
//
//	listen   = ":8080"
//	database = "flyover.db"
//
//	log {
//	  level  = "debug"
//	  format = "text"
//	}
//
//	runner {
//	  url           = "http://127.0.0.1:5000"
//	  timeout       = "2s"
//	  poll_interval = "200ms"
//	}
//
//	planner {
//	  obstacle_blocking        = true
//	  distance_cache_max_nodes = 400
//	}
//
//	playback {
//	  interval = "400ms"
//	}
//
//	auth {
//	  jwt_secret = env.FLYOVER_JWT_SECRET
//	}
//
// Expressions may read the process environment through the env object.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/flyover/mission"
)

// Defaults for settings absent from the file.
const (
	DefaultListen                = ":8080"
	DefaultDatabase              = "flyover.db"
	DefaultKeepSnapshots         = 10
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "json"
	DefaultRunnerTimeout         = 2 * time.Second
	DefaultDistanceCacheMaxNodes = 400
)

// Config is the resolved service configuration.
type Config struct {
	Listen        string
	Database      string
	KeepSnapshots int

	LogLevel  string
	LogFormat string

	// RunnerURL is the flight-control base URL; empty disables missions.
	RunnerURL     string
	RunnerTimeout time.Duration
	PollInterval  time.Duration

	ObstacleBlocking      bool
	DistanceCacheMaxNodes int

	PlaybackInterval time.Duration

	// JWTSecret, when set, requires HS256 bearer tokens on API writes.
	JWTSecret string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Listen:                DefaultListen,
		Database:              DefaultDatabase,
		KeepSnapshots:         DefaultKeepSnapshots,
		LogLevel:              DefaultLogLevel,
		LogFormat:             DefaultLogFormat,
		RunnerTimeout:         DefaultRunnerTimeout,
		PollInterval:          mission.DefaultPollInterval,
		ObstacleBlocking:      true,
		DistanceCacheMaxNodes: DefaultDistanceCacheMaxNodes,
		PlaybackInterval:      mission.DefaultPlaybackInterval,
	}
}

// hclFile is the decoding target. Pointers tell "absent" from zero values.
type hclFile struct {
	Listen        *string `hcl:"listen,optional"`
	Database      *string `hcl:"database,optional"`
	KeepSnapshots *int    `hcl:"keep_snapshots,optional"`

	Log      *hclLog      `hcl:"log,block"`
	Runner   *hclRunner   `hcl:"runner,block"`
	Planner  *hclPlanner  `hcl:"planner,block"`
	Playback *hclPlayback `hcl:"playback,block"`
	Auth     *hclAuth     `hcl:"auth,block"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclRunner struct {
	URL          *string `hcl:"url,optional"`
	Timeout      *string `hcl:"timeout,optional"`
	PollInterval *string `hcl:"poll_interval,optional"`
}

type hclPlanner struct {
	ObstacleBlocking      *bool `hcl:"obstacle_blocking,optional"`
	DistanceCacheMaxNodes *int  `hcl:"distance_cache_max_nodes,optional"`
}

type hclPlayback struct {
	Interval *string `hcl:"interval,optional"`
}

type hclAuth struct {
	JWTSecret *string `hcl:"jwt_secret,optional"`
}

// Load reads the HCL file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	var f hclFile
	if err := hclsimple.DecodeFile(path, evalContext(), &f); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return resolve(f)
}

// Parse is Load for in-memory source; filename must end in ".hcl".
func Parse(filename string, src []byte) (Config, error) {
	var f hclFile
	if err := hclsimple.Decode(filename, src, evalContext(), &f); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", filename, err)
	}

	return resolve(f)
}

// evalContext exposes the environment as env.NAME.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}

func resolve(f hclFile) (Config, error) {
	cfg := Default()
	var errs []error
	duration := func(dst *time.Duration, raw *string, name string) {
		if raw == nil {
			return
		}
		d, err := time.ParseDuration(*raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", name, err))
			return
		}
		*dst = d
	}

	set(&cfg.Listen, f.Listen)
	set(&cfg.Database, f.Database)
	set(&cfg.KeepSnapshots, f.KeepSnapshots)
	if f.Log != nil {
		set(&cfg.LogLevel, f.Log.Level)
		set(&cfg.LogFormat, f.Log.Format)
	}
	if f.Runner != nil {
		set(&cfg.RunnerURL, f.Runner.URL)
		duration(&cfg.RunnerTimeout, f.Runner.Timeout, "runner.timeout")
		duration(&cfg.PollInterval, f.Runner.PollInterval, "runner.poll_interval")
	}
	if f.Planner != nil {
		set(&cfg.ObstacleBlocking, f.Planner.ObstacleBlocking)
		set(&cfg.DistanceCacheMaxNodes, f.Planner.DistanceCacheMaxNodes)
	}
	if f.Playback != nil {
		duration(&cfg.PlaybackInterval, f.Playback.Interval, "playback.interval")
	}
	if f.Auth != nil {
		set(&cfg.JWTSecret, f.Auth.JWTSecret)
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Normalize lower-cases enumerated values and trims the runner URL.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.RunnerURL = strings.TrimSpace(c.RunnerURL)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Listen == "" {
		errs = append(errs, errors.New("config: listen must not be empty"))
	}
	if c.Database == "" {
		errs = append(errs, errors.New("config: database must not be empty"))
	}
	if c.KeepSnapshots < 0 {
		errs = append(errs, fmt.Errorf("config: keep_snapshots must be >= 0, got %d", c.KeepSnapshots))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: log.level must be debug, info, warn or error, got %q", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("config: log.format must be text or json, got %q", c.LogFormat))
	}
	if c.RunnerTimeout <= 0 {
		errs = append(errs, fmt.Errorf("config: runner.timeout must be positive, got %v", c.RunnerTimeout))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("config: runner.poll_interval must be positive, got %v", c.PollInterval))
	}
	if c.DistanceCacheMaxNodes < 0 {
		errs = append(errs, fmt.Errorf("config: planner.distance_cache_max_nodes must be >= 0, got %d", c.DistanceCacheMaxNodes))
	}
	if c.PlaybackInterval <= 0 {
		errs = append(errs, fmt.Errorf("config: playback.interval must be positive, got %v", c.PlaybackInterval))
	}

	return errors.Join(errs...)
}
