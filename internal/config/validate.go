package config

import (
	"fmt"

	"model-resolver/internal/diagnostic"
	"model-resolver/internal/schema"
)

// Validate checks a configuration before any package is loaded.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported config version %q", f.Version), "", "")
	}

	if len(f.Packages) == 0 {
		res.AddError("no_packages", "at least one package pattern is required", "", "")
	}

	seen := make(map[string]struct{}, len(f.Roots))
	for _, root := range f.Roots {
		if root == "" {
			res.AddError("empty_root", "root type name is empty", "", "")
			continue
		}

		if _, ok := seen[root]; ok {
			res.AddWarning("duplicate_root", fmt.Sprintf("root %q is listed twice", root), root, "")
			continue
		}

		seen[root] = struct{}{}
	}

	for name, entry := range f.Scalars {
		switch entry.Type {
		case schema.TypeString, schema.TypeInteger, schema.TypeNumber, schema.TypeBoolean:
		default:
			res.AddError("invalid_scalar_type",
				fmt.Sprintf("scalar %q has type %q; want string, integer, number or boolean", name, entry.Type), name, "")
		}
	}

	switch f.Output.Format {
	case FormatYAML, FormatJSON:
	default:
		res.AddError("invalid_output_format", fmt.Sprintf("unknown output format %q", f.Output.Format), "", "")
	}

	return res
}
