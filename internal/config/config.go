// Package config resolves the connection string and check parameters.
//
// Sources, highest precedence first:
//   - command-line flags
//   - the DATABASE_URL environment variable
//   - a YAML file passed with --config
//   - built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvDatabaseURL names the environment variable holding the connection string.
const EnvDatabaseURL = "DATABASE_URL"

// ErrNoDatabaseURL is returned when no source supplied a connection string.
var ErrNoDatabaseURL = errors.New("no database connection string: set " + EnvDatabaseURL + " or pass --database-url")

// DefaultIDs are the identifiers checked when none are configured.
// 381 lies outside the seeded range, so three rows match.
var DefaultIDs = []int64{10, 20, 381, 35}

// Config holds everything a command needs besides its own flags.
type Config struct {
	DatabaseURL string  `yaml:"database_url"`
	IDs         []int64 `yaml:"ids"`
	StrictOrder bool    `yaml:"strict_order"`
}

// Default returns the built-in configuration. DatabaseURL is left empty.
func Default() Config {
	ids := make([]int64, len(DefaultIDs))
	copy(ids, DefaultIDs)
	return Config{IDs: ids}
}

// LoadFile reads a YAML file over base. Keys absent from the file keep the
// value from base; unknown keys are an error.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}

	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment values. lookup is os.LookupEnv outside tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDatabaseURL); ok && strings.TrimSpace(v) != "" {
		c.DatabaseURL = strings.TrimSpace(v)
	}
}

// Validate checks that a connection string is present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return ErrNoDatabaseURL
	}
	return nil
}

// ParseIDs parses a comma-separated list of integers such as "10,20,381,35".
// Whitespace around elements is ignored; empty elements are rejected.
func ParseIDs(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return []int64{}, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("id %d is empty", i+1)
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("id %d (%q) is not an integer", i+1, p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// FormatIDs renders ids in the form ParseIDs accepts.
func FormatIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
