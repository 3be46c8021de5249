// Package config loads generator settings with viper.
package config

import (
	"maps"
	"slices"

	"github.com/cockroachdb/errors"

	"driver-generator/internal/design"
	"driver-generator/internal/gen"
	"driver-generator/internal/resolve"
)

// Config is the generator configuration.
type Config struct {
	Namespace    string         `mapstructure:"namespace"`
	Indent       string         `mapstructure:"indent"`
	ClassSuffix  string         `mapstructure:"class_suffix"`
	AttachVerb   string         `mapstructure:"attach_verb"`
	ReworkMarker string         `mapstructure:"rework_marker"`
	Usings       []string       `mapstructure:"usings"`
	SearchUsings []string       `mapstructure:"search_usings"`
	Drivers      []DriverConfig `mapstructure:"drivers"`
	Verbose      bool           `mapstructure:"verbose"`
	LogOutput    []string       `mapstructure:"log_output"`
}

// DriverConfig registers the driver class for a runtime type.
type DriverConfig struct {
	TypeFullName string `mapstructure:"type_full_name"`
	Driver       string `mapstructure:"driver"`
}

// Validate checks the configuration for values generation cannot work with.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return errors.New("namespace must not be empty")
	}

	if !design.IsIdentifier(c.AttachVerb) {
		return errors.Newf("attach verb %q is not an identifier", c.AttachVerb)
	}

	seen := make(map[string]struct{}, len(c.Drivers))
	for i, d := range c.Drivers {
		if d.TypeFullName == "" || d.Driver == "" {
			return errors.WithHint(
				errors.Newf("drivers[%d]: type_full_name and driver are required", i),
				"each entry maps a runtime type to its driver class",
			)
		}

		if _, dup := seen[d.TypeFullName]; dup {
			return errors.Newf("drivers[%d]: %s is registered twice", i, d.TypeFullName)
		}

		seen[d.TypeFullName] = struct{}{}
	}

	return nil
}

// ResolverConfig returns the access path resolver settings.
func (c *Config) ResolverConfig() resolve.Config {
	rc := resolve.DefaultConfig()
	rc.SearchUsings = slices.Clone(c.SearchUsings)

	return rc
}

// EmitterConfig returns the code emitter settings.
func (c *Config) EmitterConfig() gen.Config {
	return gen.Config{
		Namespace:    c.Namespace,
		Indent:       c.Indent,
		ClassSuffix:  c.ClassSuffix,
		AttachVerb:   c.AttachVerb,
		ReworkMarker: c.ReworkMarker,
		Usings:       slices.Clone(c.Usings),
	}
}

// DriverIndex maps runtime type full names to driver full names.
func (c *Config) DriverIndex() map[string]string {
	index := make(map[string]string, len(c.Drivers))
	for _, d := range c.Drivers {
		index[d.TypeFullName] = d.Driver
	}

	return index
}

// KnownTypes returns the registered runtime types in sorted order.
func (c *Config) KnownTypes() []string {
	return slices.Sorted(maps.Keys(c.DriverIndex()))
}
