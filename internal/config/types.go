package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"model-resolver/internal/export"
	"model-resolver/internal/scalar"
)

// Output formats.
const (
	FormatYAML = export.FormatYAML
	FormatJSON = export.FormatJSON
)

// File is the root structure of a configuration file.
type File struct {
	// Version is the schema version (currently "1").
	Version string `yaml:"version"`
	// Packages are Go package patterns to load.
	Packages StringOrArray `yaml:"packages"`
	// Roots name the types to resolve, as "Name" or "path/to/pkg.Name".
	Roots StringOrArray `yaml:"roots,omitempty"`
	// Scalars extends or overrides the scalar table by canonical name.
	Scalars  map[string]scalar.Entry `yaml:"scalars,omitempty"`
	Resolver ResolverOptions         `yaml:"resolver"`
	Output   Output                  `yaml:"output"`
}

// ResolverOptions tunes the resolver.
type ResolverOptions struct {
	MaxDepth    int  `yaml:"max_depth"`
	Concurrency int  `yaml:"concurrency"`
	Debug       bool `yaml:"debug,omitempty"`
}

// Output describes the generated document.
type Output struct {
	Format  string `yaml:"format"`
	Path    string `yaml:"path,omitempty"`
	Title   string `yaml:"title,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
