// Package cli turns command-line arguments into a validated configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/flyover/internal/config"
)

// EnvJWTSecret names the environment variable overriding auth.jwt_secret.
const EnvJWTSecret = "FLYOVER_JWT_SECRET"

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. Flags override the environment,
// the environment overrides the config file, and the file overrides the
// defaults. It reports true when the program should exit cleanly, as after -h.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("flyover", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
flyover - full-coverage route planner for indoor inspection flights.

Usage:
  flyover [options]

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	configPath := fs.String("config", "", "Path to an HCL configuration file.")
	listen := fs.String("listen", def.Listen, "HTTP listen address.")
	database := fs.String("db", def.Database, "Path to the sqlite database.")
	runnerURL := fs.String("runner-url", def.RunnerURL, "Flight-control base URL. Empty disables missions.")
	logLevel := fs.String("log-level", def.LogLevel, "Logging level: debug, info, warn or error.")
	logFormat := fs.String("log-format", def.LogFormat, "Log output format: text or json.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	// Secrets stay out of files and argv when the environment carries them.
	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		cfg.JWTSecret = secret
	}

	// Only explicitly set flags win.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Listen = *listen
		case "db":
			cfg.Database = *database
		case "runner-url":
			cfg.RunnerURL = *runnerURL
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cfg, false, nil
}
