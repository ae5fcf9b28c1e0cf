package provider

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftgen/shiftgen/ir"
)

func TestParseTypeExpr_RoundTrip(t *testing.T) {
	// Parsed then rendered expressions come back in canonical spelling.
	cases := map[string]string{
		"i32":                         "i32",
		" string ":                    "string",
		"binary":                      "binary",
		"list<i64>":                   "list<i64>",
		"list<list<bool>>":            "list<list<bool>>",
		"map<string, i32>":            "map<string, i32>",
		"map<string,list<double>>":    "map<string, list<double>>",
		"Nested2":                     "testing.Nested2",
		"testing.Nested2":             "testing.Nested2",
		"other.Person":                "other.Person",
		"map<i32, map<string, byte>>": "map<i32, map<string, byte>>",
		"list<Nested3>":               "list<testing.Nested3>",
		"map<string, other.Building>": "map<string, other.Building>",
		"list<map<string, Nested1>>":  "list<map<string, testing.Nested1>>",
		"map<binary, list<i16>>":      "map<binary, list<i16>>",
	}

	got := make(map[string]string, len(cases))
	for in := range cases {
		desc, err := ParseTypeExpr("testing", in)
		require.NoError(t, err, "parse %q", in)
		got[in] = RenderTypeExpr(desc)
	}
	if diff := cmp.Diff(cases, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTypeExpr_Errors(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"list<>",
		"map<i32>",
		"list<i32",
		"i32>",
		"a.b.c",
		".Name",
		"name.",
	}
	for _, in := range cases {
		_, err := ParseTypeExpr("testing", in)
		assert.Error(t, err, "expected %q to be rejected", in)
	}
}

func TestParseTypeExpr_MapSplitsTopLevelComma(t *testing.T) {
	desc, err := ParseTypeExpr("testing", "map<map<string, i32>, i64>")
	require.NoError(t, err)
	m, ok := desc.(*ir.MapDescriptor)
	require.True(t, ok)
	assert.Equal(t, ir.KindMap, m.Key.Kind())
	assert.Equal(t, "i64", RenderTypeExpr(m.Value))
}
