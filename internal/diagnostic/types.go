package diagnostic

import (
	"fmt"
	"slices"
	"strings"
)

// Codes reported while loading and resolving.
const (
	CodePropertyDropped     = "property_dropped"
	CodeSubtypeUnresolved   = "subtype_unresolved"
	CodeCompositionDeferred = "composition_deferred"
	CodeRunawayRecursion    = "runaway_recursion"
	CodeNameCollision       = "name_collision"
)

// Diagnostics collects findings by severity. Errors fail a run; warnings
// and infos are reported and the run goes on.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is one finding about a schema or one of its properties.
type Diagnostic struct {
	Code     string
	Message  string
	Schema   string
	Property string
}

// AddError records a finding that fails the run.
func (d *Diagnostics) AddError(code, message, schemaName, property string) {
	d.Errors = append(d.Errors, Diagnostic{Code: code, Message: message, Schema: schemaName, Property: property})
}

// AddWarning records a degraded result.
func (d *Diagnostics) AddWarning(code, message, schemaName, property string) {
	d.Warnings = append(d.Warnings, Diagnostic{Code: code, Message: message, Schema: schemaName, Property: property})
}

// AddInfo records a note that needs no action.
func (d *Diagnostics) AddInfo(code, message, schemaName, property string) {
	d.Infos = append(d.Infos, Diagnostic{Code: code, Message: message, Schema: schemaName, Property: property})
}

// Len counts diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Clone returns a copy that shares no slices with d.
func (d *Diagnostics) Clone() Diagnostics {
	return Diagnostics{
		Errors:   slices.Clone(d.Errors),
		Warnings: slices.Clone(d.Warnings),
		Infos:    slices.Clone(d.Infos),
	}
}

// Error joins the error diagnostics into one error, or returns nil when
// there are none.
func (d *Diagnostics) Error() error {
	if len(d.Errors) == 0 {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

// String renders "[Schema] property: [code] message", leaving out the
// parts that are empty.
func (d Diagnostic) String() string {
	var b strings.Builder

	switch {
	case d.Schema != "" && d.Property != "":
		fmt.Fprintf(&b, "[%s] %s: ", d.Schema, d.Property)
	case d.Schema != "":
		fmt.Fprintf(&b, "[%s]: ", d.Schema)
	case d.Property != "":
		fmt.Fprintf(&b, "%s: ", d.Property)
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	return b.String()
}
