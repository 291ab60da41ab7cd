package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/consts"
	"github.com/pseudomuto/unitdiff/pkg/semdiff"
	"gopkg.in/yaml.v3"
)

type (
	// Compare holds the comparison policy for a project.
	Compare struct {
		// IgnoreAttributes lists user attributes stripped from both sides
		// before attribute lists are compared
		IgnoreAttributes []string `yaml:"ignore_attributes,omitempty"`

		// IgnoreBodies skips comparison of instruction bodies
		IgnoreBodies bool `yaml:"ignore_bodies,omitempty"`

		// IgnoreDocs skips comparison of doc comments
		IgnoreDocs bool `yaml:"ignore_docs,omitempty"`

		// Workers is the concurrency for batch comparison and parallel
		// fan-out over top-level declarations
		Workers int `yaml:"workers,omitempty"`
	}

	// ClickHouse holds the optional verdict sink settings. The sink is
	// enabled when DSN is non-empty.
	ClickHouse struct {
		// DSN is the ClickHouse connection string, e.g.
		// clickhouse://localhost:9000/ci
		DSN string `yaml:"dsn,omitempty"`

		// Table is the table batch verdicts are written to
		Table string `yaml:"table,omitempty"`
	}

	// Config represents the project configuration for unit comparison.
	Config struct {
		// Compare contains the comparison policy
		Compare Compare `yaml:"compare"`

		// ClickHouse contains the optional verdict sink settings
		ClickHouse ClickHouse `yaml:"clickhouse"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Unset values fall
// back to package consts defaults.
//
// Example:
//
//	yamlData := `
//	compare:
//	  ignore_bodies: true
//	  workers: 8
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Compare.Workers == 0 {
		cfg.Compare.Workers = consts.DefaultWorkers
	}
	if cfg.ClickHouse.Table == "" {
		cfg.ClickHouse.Table = consts.DefaultVerdictTable
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("unitdiff.yaml")
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Options converts the comparison policy into semdiff options.
func (c Compare) Options() []semdiff.Option {
	opts := make([]semdiff.Option, 0, len(c.IgnoreAttributes)+3)
	for _, name := range c.IgnoreAttributes {
		opts = append(opts, semdiff.IgnoreAttribute(name))
	}

	if c.IgnoreBodies {
		opts = append(opts, semdiff.IgnoreBodies())
	}
	if c.IgnoreDocs {
		opts = append(opts, semdiff.IgnoreDocs())
	}
	if c.Workers > 1 {
		opts = append(opts, semdiff.Parallel(c.Workers))
	}

	return opts
}

// Enabled reports whether the verdict sink is configured.
func (c ClickHouse) Enabled() bool {
	return c.DSN != ""
}
