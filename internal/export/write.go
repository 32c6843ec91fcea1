package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *Object, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil

	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return enc.Close()

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Marshal renders doc in the given format.
func Marshal(doc *Object, format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile writes doc to path, or to stdout when path is empty or "-".
func WriteFile(doc *Object, format, path string) error {
	if path == "" || path == "-" {
		return Encode(os.Stdout, doc, format)
	}

	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
