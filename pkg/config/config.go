// Package config holds the settings shared by every arraypointer subcommand.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"arraypointer/pkg/format"
	"arraypointer/pkg/view"
)

// Config is the YAML configuration file layout.
type Config struct {
	Delimiter string    `yaml:"delimiter"`
	Precision int       `yaml:"precision"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig selects the logger output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Delimiter: view.DefaultDelimiter,
		Precision: format.DefaultPrecision,
		Log: LogConfig{
			Level:  "info",
			Format: "logfmt",
		},
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "loading %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg. Unknown fields are rejected; an empty document
// leaves cfg unchanged.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decoding yaml")
	}
	return cfg.Validate()
}

// Validate rejects settings no subcommand can honour.
func (c Config) Validate() error {
	if c.Precision < 0 {
		return errors.Errorf("precision must not be negative, got %d", c.Precision)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
