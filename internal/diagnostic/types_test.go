package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddInfo(CodeCompositionDeferred, "deferred", "Dog", "")
	d.AddWarning(CodePropertyDropped, "type func() did not resolve", "Order", "callback")
	assert.NoError(t, d.Error())
	assert.Equal(t, 2, d.Len())

	d.AddError(CodeRunawayRecursion, "too deep", "Loop", "")
	assert.Equal(t, 3, d.Len())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[Loop]: [runaway_recursion] too deep", err.Error())

	d.AddError(CodeRunawayRecursion, "too deep", "Other", "")
	assert.Equal(t, "[Loop]: [runaway_recursion] too deep; [Other]: [runaway_recursion] too deep", d.Error().Error())
}

func TestDiagnostics_CloneIsIndependent(t *testing.T) {
	var d Diagnostics
	d.AddWarning(CodePropertyDropped, "dropped", "Order", "callback")

	c := d.Clone()
	c.AddWarning(CodePropertyDropped, "dropped", "Order", "hook")

	assert.Len(t, d.Warnings, 1)
	assert.Len(t, c.Warnings, 2)
	assert.Nil(t, c.Errors)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{Diagnostic{Message: "plain"}, "plain"},
		{Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{Diagnostic{Code: "c", Message: "m", Schema: "Pet"}, "[Pet]: [c] m"},
		{Diagnostic{Code: "c", Message: "m", Schema: "Pet", Property: "name"}, "[Pet] name: [c] m"},
		{Diagnostic{Message: "m", Property: "name"}, "name: m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}
}
