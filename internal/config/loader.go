package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"model-resolver/internal/resolve"
	"model-resolver/internal/scalar"
)

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// Default returns a configuration with every default applied.
func Default() *File {
	var f File
	applyDefaults(&f)

	return &f
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	def := resolve.DefaultConfig()
	if f.Resolver.MaxDepth <= 0 {
		f.Resolver.MaxDepth = def.MaxDepth
	}

	if f.Resolver.Concurrency <= 0 {
		f.Resolver.Concurrency = def.Concurrency
	}

	if f.Output.Format == "" {
		f.Output.Format = FormatYAML
	}
}

// ResolverConfig converts the file into resolver settings.
func (f *File) ResolverConfig() resolve.Config {
	cfg := resolve.DefaultConfig()
	cfg.MaxDepth = f.Resolver.MaxDepth
	cfg.Concurrency = f.Resolver.Concurrency
	cfg.Debug = f.Resolver.Debug

	if len(f.Scalars) > 0 {
		cfg.Scalars = scalar.New(f.Scalars)
	}

	return cfg
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
