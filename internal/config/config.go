// Package config holds the settings of the compression service.
package config

import (
	"fmt"
	"strconv"
	"time"
)

type (
	// HTTP configures the listener and per-request limits.
	HTTP struct {
		// Addr is the TCP address to listen on.
		Addr string

		// MaxBodySize caps request bodies in bytes. Larger bodies are rejected
		// with 413 before any codec work is done.
		MaxBodySize int64

		ReadTimeout  time.Duration
		WriteTimeout time.Duration

		// ShutdownTimeout bounds how long in-flight requests may run once a
		// termination signal arrives.
		ShutdownTimeout time.Duration
	}

	Config struct {
		HTTP HTTP

		// Mode is the gin mode: debug, release or test.
		Mode string

		// Verbose enables debug logging.
		Verbose bool `test:"nullable"`
	}
)

// Default returns a configuration that is ready to serve.
func Default() *Config {
	return &Config{
		HTTP: HTTP{
			Addr:            ":8080",
			MaxBodySize:     32 << 20,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Mode: "release",
	}
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv overlays variables named <prefix>_<NAME> onto the defaults.
// Recognized names are ADDR, MAX_BODY_SIZE, READ_TIMEOUT, WRITE_TIMEOUT,
// SHUTDOWN_TIMEOUT, MODE and VERBOSE. A variable that is set but cannot be
// parsed is an error.
func FromEnv(prefix string, lookup LookupFunc) (*Config, error) {
	cfg := Default()
	env := func(name string) (string, bool) {
		return lookup(prefix + "_" + name)
	}

	if v, ok := env("ADDR"); ok {
		if v == "" {
			return nil, fmt.Errorf("%s_ADDR: must not be empty", prefix)
		}
		cfg.HTTP.Addr = v
	}

	if v, ok := env("MAX_BODY_SIZE"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s_MAX_BODY_SIZE: want a positive byte count, got %q", prefix, v)
		}
		cfg.HTTP.MaxBodySize = n
	}

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"READ_TIMEOUT", &cfg.HTTP.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.HTTP.ShutdownTimeout},
	}
	for _, d := range durations {
		v, ok := env(d.name)
		if !ok {
			continue
		}
		dur, err := time.ParseDuration(v)
		if err != nil || dur <= 0 {
			return nil, fmt.Errorf("%s_%s: want a positive duration, got %q", prefix, d.name, v)
		}
		*d.dst = dur
	}

	if v, ok := env("MODE"); ok {
		switch v {
		case "debug", "release", "test":
			cfg.Mode = v
		default:
			return nil, fmt.Errorf("%s_MODE: unknown mode %q", prefix, v)
		}
	}

	if v, ok := env("VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s_VERBOSE: %w", prefix, err)
		}
		cfg.Verbose = b
	}

	return cfg, nil
}
