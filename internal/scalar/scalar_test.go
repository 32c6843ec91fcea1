package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-resolver/internal/schema"
)

func TestMapper_Lookup(t *testing.T) {
	m := Default()

	tests := []struct {
		name   string
		typ    string
		format string
	}{
		{"string", schema.TypeString, ""},
		{"bool", schema.TypeBoolean, ""},
		{"int", schema.TypeInteger, FormatInt64},
		{"int32", schema.TypeInteger, FormatInt32},
		{"uint8", schema.TypeInteger, FormatInt32},
		{"float32", schema.TypeNumber, FormatFloat},
		{"float64", schema.TypeNumber, FormatDouble},
		{"time.Time", schema.TypeString, FormatDateTime},
		{"date", schema.TypeString, FormatDate},
		{"[]byte", schema.TypeString, FormatBinary},
		{"time.Duration", schema.TypeInteger, FormatInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := m.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, schema.KindScalar, p.Kind)
			assert.Equal(t, tt.typ, p.Type)
			assert.Equal(t, tt.format, p.Format)
		})
	}
}

func TestMapper_NotScalar(t *testing.T) {
	m := Default()

	for _, name := range []string{"Pet", "[]string", "map[string]int", "any", ""} {
		_, ok := m.Lookup(name)
		assert.False(t, ok, name)
		assert.False(t, m.IsScalar(name), name)
	}
}

func TestMapper_LookupReturnsFreshProperty(t *testing.T) {
	m := Default()

	a, _ := m.Lookup("string")
	a.Name = "mutated"

	b, _ := m.Lookup("string")
	assert.Empty(t, b.Name)
}

func TestMapper_Overrides(t *testing.T) {
	m := New(map[string]Entry{
		"decimal.Decimal": {Type: schema.TypeString, Format: "decimal"},
		"int":             {Type: schema.TypeInteger, Format: FormatInt32},
	})

	p, ok := m.Lookup("decimal.Decimal")
	require.True(t, ok)
	assert.Equal(t, "decimal", p.Format)

	p, ok = m.Lookup("int")
	require.True(t, ok)
	assert.Equal(t, FormatInt32, p.Format)

	// the default table is not affected
	p, _ = Default().Lookup("int")
	assert.Equal(t, FormatInt64, p.Format)
}

func TestMapper_NamesSorted(t *testing.T) {
	names := Default().Names()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "time.Time")
}
