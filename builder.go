// File: lixenwraith/conf/builder.go
package conf

import (
	"fmt"
	"log/slog"
)

// ValidatorFunc validates a fully constructed Config. It receives the built
// instance and returns an error if validation fails.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for assembling a Config from a file,
// explicit properties and deprecation tables.
type Builder struct {
	props      map[string]string
	file       string
	opts       Options
	validators []ValidatorFunc
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithProperties sets explicit key/value pairs. They take precedence over
// values loaded from a file.
func (b *Builder) WithProperties(props map[string]string) *Builder {
	b.props = props
	return b
}

// WithFile sets a TOML/JSON/YAML file to seed the store from.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithAlternatives installs the canonical-key -> DeprecatedEntry table.
func (b *Builder) WithAlternatives(table map[string]DeprecatedEntry) *Builder {
	b.opts.Alternatives = table
	return b
}

// WithDeprecated installs the deprecated-key -> DeprecatedEntry table.
func (b *Builder) WithDeprecated(table map[string]DeprecatedEntry) *Builder {
	b.opts.Deprecated = table
	return b
}

// WithLogger sets the logger that receives deprecation warnings.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.opts.Logger = l
	return b
}

// WithValidator adds a validation function that runs at the end of the
// build. Multiple validators execute in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Config instance with all specified options.
func (b *Builder) Build() (*Config, error) {
	seed := make(map[string]string)

	if b.file != "" {
		fileProps, err := LoadFile(b.file)
		if err != nil {
			return nil, err
		}
		for k, v := range fileProps {
			seed[k] = v
		}
	}
	for k, v := range b.props {
		seed[k] = v
	}

	cfg := NewWithOptions(seed, b.opts)

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}
