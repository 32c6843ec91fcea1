// Package export renders a schema registry as a Swagger 2.0 document
// in YAML or JSON, keeping property order stable.
package export
