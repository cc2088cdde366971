package semantic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavier-bw/speech-rule-engine/semantic"
)

// TestZeroMeaningIsUnknown verifies the explicit bottom triple.
func TestZeroMeaningIsUnknown(t *testing.T) {
	var m semantic.Meaning
	assert.True(t, m.IsUnknown(), "zero Meaning must be the bottom triple")
	assert.Equal(t, "unknown/unknown/unknown", m.String())
}

// TestTypeNamesRoundTrip verifies String/ParseType agree on every value.
func TestTypeNamesRoundTrip(t *testing.T) {
	for typ := semantic.TypeUnknown; typ <= semantic.TypeRow; typ++ {
		parsed, ok := semantic.ParseType(typ.String())
		assert.True(t, ok, "name %q must parse", typ.String())
		assert.Equal(t, typ, parsed)
	}
}

// TestRoleNamesRoundTrip verifies String/ParseRole agree on every value.
func TestRoleNamesRoundTrip(t *testing.T) {
	for role := semantic.RoleUnknown; role <= semantic.RoleIntegral; role++ {
		parsed, ok := semantic.ParseRole(role.String())
		assert.True(t, ok, "name %q must parse", role.String())
		assert.Equal(t, role, parsed)
	}
}

// TestFontNamesRoundTrip verifies String/ParseFont agree on every value.
func TestFontNamesRoundTrip(t *testing.T) {
	for font := semantic.FontUnknown; font <= semantic.FontFullwidth; font++ {
		parsed, ok := semantic.ParseFont(font.String())
		assert.True(t, ok, "name %q must parse", font.String())
		assert.Equal(t, font, parsed)
	}
}

// TestParseRejectsUnknownNames verifies unrecognized names report !ok.
func TestParseRejectsUnknownNames(t *testing.T) {
	if _, ok := semantic.ParseType("no-such-type"); ok {
		t.Error("ParseType accepted an unknown name")
	}
	if _, ok := semantic.ParseRole("no-such-role"); ok {
		t.Error("ParseRole accepted an unknown name")
	}
	if _, ok := semantic.ParseFont("no-such-font"); ok {
		t.Error("ParseFont accepted an unknown name")
	}
}

// TestParseIsCaseInsensitive covers loader input written in mixed case.
func TestParseIsCaseInsensitive(t *testing.T) {
	typ, ok := semantic.ParseType("OPERATOR")
	assert.True(t, ok)
	assert.Equal(t, semantic.TypeOperator, typ)
}
