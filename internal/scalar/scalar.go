// Package scalar maps canonical type names to built-in scalar schemas.
package scalar

import (
	"maps"
	"slices"

	"model-resolver/internal/schema"
)

// Entry is the base type and format a scalar name maps to.
type Entry struct {
	Type   string `yaml:"type"`
	Format string `yaml:"format,omitempty"`
}

// Formats used by the built-in table.
const (
	FormatInt32    = "int32"
	FormatInt64    = "int64"
	FormatFloat    = "float"
	FormatDouble   = "double"
	FormatDate     = "date"
	FormatDateTime = "date-time"
	FormatBinary   = "binary"
	FormatUUID     = "uuid"
)

func builtin() map[string]Entry {
	table := make(map[string]Entry)

	add := func(e Entry, names ...string) {
		for _, n := range names {
			table[n] = e
		}
	}

	add(Entry{Type: schema.TypeString}, "string")
	add(Entry{Type: schema.TypeBoolean}, "bool", "boolean")

	// Go's int and uint are 64 bits wide on every platform we target.
	add(Entry{Type: schema.TypeInteger, Format: FormatInt64},
		"int", "int64", "uint", "uint64", "uintptr", "long", "time.Duration")
	add(Entry{Type: schema.TypeInteger, Format: FormatInt32},
		"int8", "int16", "int32", "uint8", "uint16", "uint32", "byte", "rune", "integer")

	add(Entry{Type: schema.TypeNumber, Format: FormatFloat}, "float32", "float")
	add(Entry{Type: schema.TypeNumber, Format: FormatDouble},
		"float64", "double", "number", "encoding/json.Number")

	add(Entry{Type: schema.TypeString, Format: FormatDateTime}, "time.Time", "date-time")
	add(Entry{Type: schema.TypeString, Format: FormatDate}, "date", "cloud.google.com/go/civil.Date")
	add(Entry{Type: schema.TypeString, Format: FormatBinary}, "[]byte", "[]uint8", "binary")
	add(Entry{Type: schema.TypeString, Format: FormatUUID}, "uuid", "github.com/google/uuid.UUID")

	return table
}

// Mapper looks up scalar schemas by canonical type name. It is immutable
// after construction and safe for concurrent use.
type Mapper struct {
	table map[string]Entry
}

// Default returns a Mapper over the built-in table.
func Default() *Mapper {
	return &Mapper{table: builtin()}
}

// New returns a Mapper over the built-in table with overrides applied.
// An override replaces a built-in entry of the same name.
func New(overrides map[string]Entry) *Mapper {
	m := Default()
	maps.Copy(m.table, overrides)

	return m
}

// Lookup returns a fresh scalar property for name, or false when name is
// not a scalar.
func (m *Mapper) Lookup(name string) (*schema.Property, bool) {
	e, ok := m.table[name]
	if !ok {
		return nil, false
	}

	return schema.Scalar(e.Type, e.Format), true
}

// IsScalar reports whether name maps to a scalar.
func (m *Mapper) IsScalar(name string) bool {
	_, ok := m.table[name]
	return ok
}

// Names returns every known scalar name in sorted order.
func (m *Mapper) Names() []string {
	return slices.Sorted(maps.Keys(m.table))
}

// Entry returns the raw table entry for name.
func (m *Mapper) Entry(name string) (Entry, bool) {
	e, ok := m.table[name]
	return e, ok
}
