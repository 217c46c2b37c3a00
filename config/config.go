// Package config loads logger settings from a YAML file and the
// environment and turns them into a logger.Builder.
package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"

	"github.com/philipp01105/godotlog/core"
	"github.com/philipp01105/godotlog/logger"
)

// Config holds the logger settings. Environment variables override the
// values read from file. Levels are decoded by name through core.Level's
// YAML and text codecs.
type Config struct {
	// Level is the default threshold (off, error, warn, info, debug, trace)
	Level core.Level `yaml:"level" env:"GODOTLOG_LEVEL"`

	// Filters are per-module overrides, applied in order
	Filters []FilterConfig `yaml:"filters"`

	// FilterSpec holds extra filters as "module=level,module=level".
	// They are appended after Filters.
	FilterSpec string `yaml:"-" env:"GODOTLOG_FILTERS"`

	// CallerModule uses the calling package path as origin for records
	// that carry no module attribute
	CallerModule bool `yaml:"callerModule" env:"GODOTLOG_CALLER_MODULE"`
}

// FilterConfig is one module override
type FilterConfig struct {
	Module string     `yaml:"module"`
	Level  core.Level `yaml:"level"`
}

// Default returns the configuration used when nothing is set: WarnLevel
// and no filters. OffLevel is the zero Level, so the default cannot be an
// env-default tag without overriding an explicit "off".
func Default() Config {
	return Config{Level: core.WarnLevel}
}

// Load reads the YAML file at path, then applies environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrapf(
			core.NewError(core.ErrCodeConfigLoad, "cannot read configuration", err),
			"config %s", path)
	}
	return &cfg, nil
}

// FromEnv builds a Config from environment variables and defaults only
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, core.NewError(core.ErrCodeConfigLoad, "cannot read environment", err)
	}
	return &cfg, nil
}

// AllFilters returns Filters followed by the entries of FilterSpec
func (c *Config) AllFilters() ([]FilterConfig, error) {
	extra, err := ParseFilterSpec(c.FilterSpec)
	if err != nil {
		return nil, err
	}
	out := make([]FilterConfig, 0, len(c.Filters)+len(extra))
	out = append(out, c.Filters...)
	return append(out, extra...), nil
}

// Builder validates the configuration and returns a logger.Builder
// carrying its level and filters.
func (c *Config) Builder() (*logger.Builder, error) {
	if !c.Level.Valid() {
		return nil, errors.Wrap(parseError("level", unknownLevel(c.Level)), "default level")
	}

	filters, err := c.AllFilters()
	if err != nil {
		return nil, err
	}

	b := logger.NewBuilder().
		WithDefaultLevel(c.Level).
		WithCallerModule(c.CallerModule)
	for i, f := range filters {
		module := strings.TrimSpace(f.Module)
		if module == "" {
			return nil, errors.Wrapf(parseError("filter", core.ErrEmptyModule), "filter #%d", i+1)
		}
		if !f.Level.Valid() {
			return nil, errors.Wrapf(parseError("filter", unknownLevel(f.Level)), "filter %q", module)
		}
		b.AddFilter(module, f.Level)
	}
	return b, nil
}

// ParseFilterSpec parses a comma-separated list of module=level pairs.
// Blank entries are skipped.
func ParseFilterSpec(spec string) ([]FilterConfig, error) {
	var out []FilterConfig
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := ParseFilter(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ParseFilter parses a single "module=level" pair
func ParseFilter(s string) (FilterConfig, error) {
	module, level, ok := strings.Cut(s, "=")
	if !ok {
		return FilterConfig{}, core.NewError(core.ErrCodeConfigParse,
			"filter "+s+" is not of the form module=level", nil)
	}
	module = strings.TrimSpace(module)
	level = strings.TrimSpace(level)
	if module == "" {
		return FilterConfig{}, parseError("filter", core.ErrEmptyModule)
	}
	parsed, err := core.ParseLevel(level)
	if err != nil {
		return FilterConfig{}, errors.Wrapf(parseError("filter", err), "filter %q", module)
	}
	return FilterConfig{Module: module, Level: parsed}, nil
}

func unknownLevel(l core.Level) error {
	return core.NewError(core.ErrCodeUnknownLevel, "level out of range: "+l.String(), nil)
}

func parseError(what string, cause error) error {
	return core.NewError(core.ErrCodeConfigParse, "invalid "+what, cause)
}
