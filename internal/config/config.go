// Package config loads wintitle settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/mj1618/wintitle/internal/output"
	"github.com/mj1618/wintitle/internal/title"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Zero-valued keys keep their defaults.
type Config struct {
	Title  TitleConfig  `yaml:"title"`
	Output OutputConfig `yaml:"output"`
	Serve  ServeConfig  `yaml:"serve"`
}

type TitleConfig struct {
	Base string `yaml:"base"`
	Name string `yaml:"name"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Pretty bool   `yaml:"pretty"`
}

type ServeConfig struct {
	Transport string `yaml:"transport"`
	Port      int    `yaml:"port"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title: TitleConfig{
			Base: title.DefaultBase,
			Name: title.DefaultName,
		},
		Output: OutputConfig{Format: string(output.FormatRaw)},
		Serve: ServeConfig{
			Transport: "stdio",
			Port:      8080,
		},
	}
}

// Load reads the YAML file at path over the defaults.
// An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	switch c.Serve.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("serve.transport: unsupported transport %q (use stdio or streamable-http)", c.Serve.Transport)
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port: %d out of range", c.Serve.Port)
	}
	return nil
}
