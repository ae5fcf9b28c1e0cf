package provider

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftgen/shiftgen/ir"
)

const testingDoc = `
schema: testing
types:
  - struct: Nested3
    doc: Innermost struct of the nesting chain.
    fields:
      - id: 1
        name: c
        type: i32
        requiredness: optional
  - struct: Nested2
    fields:
      - id: 1
        name: b
        type: Nested3
  - struct: Nested1
    fields:
      - id: 1
        name: a
        type: Nested2
  - alias: ID
    type: i64
  - enum: Color
    members:
      - name: RED
        value: 0
      - name: BLUE
        value: 1
`

func TestYAMLProvider_BuildSchema(t *testing.T) {
	provider := &YAMLProvider{}
	schema, err := provider.BuildSchema(context.Background(), YAMLInputOptions{Data: []byte(testingDoc)})
	require.NoError(t, err)

	assert.Equal(t, "testing", schema.Info.Name)
	require.Len(t, schema.Types, 5)

	nested3, ok := schema.FindType(ir.Identifier{Name: "Nested3", Schema: "testing"}).(*ir.StructDescriptor)
	require.True(t, ok, "Nested3 should be a struct")
	assert.Equal(t, "Innermost struct of the nesting chain.", nested3.Documentation.Summary)

	require.Len(t, nested3.Fields, 1)
	c := nested3.Fields[0]
	assert.Equal(t, int16(1), c.ID)
	assert.Equal(t, "c", c.Name)
	assert.Equal(t, ir.Optional, c.Requiredness)
	assert.Equal(t, "i32", RenderTypeExpr(c.Type))

	nested2 := schema.FindType(ir.Identifier{Name: "Nested2", Schema: "testing"}).(*ir.StructDescriptor)
	ref, ok := nested2.Fields[0].Type.(*ir.ReferenceDescriptor)
	require.True(t, ok, "bare name should resolve to a same-schema reference")
	assert.Equal(t, "testing.Nested3", ref.Target.Key())

	alias := schema.FindType(ir.Identifier{Name: "ID", Schema: "testing"}).(*ir.AliasDescriptor)
	assert.Equal(t, ir.KindPrimitive, alias.Underlying.Kind())

	enum := schema.FindType(ir.Identifier{Name: "Color", Schema: "testing"}).(*ir.EnumDescriptor)
	require.Len(t, enum.Members, 2)
	assert.Equal(t, int32(1), enum.Members[1].Value)
}

func TestYAMLProvider_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "testing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testingDoc), 0o644))

	provider := &YAMLProvider{}
	schema, err := provider.BuildSchema(context.Background(), YAMLInputOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, schema.Info.Path)
}

func TestYAMLProvider_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing schema name",
			doc:  "types: []",
			want: "missing top-level",
		},
		{
			name: "zero field ID",
			doc: `
schema: t
types:
  - struct: S
    fields:
      - id: 0
        name: x
        type: i32
`,
			want: "ID must be positive",
		},
		{
			name: "duplicate field ID",
			doc: `
schema: t
types:
  - struct: S
    fields:
      - {id: 1, name: x, type: i32}
      - {id: 1, name: y, type: i32}
`,
			want: "reuses ID",
		},
		{
			name: "duplicate field name",
			doc: `
schema: t
types:
  - struct: S
    fields:
      - {id: 1, name: x, type: i32}
      - {id: 2, name: x, type: i32}
`,
			want: "duplicate field name",
		},
		{
			name: "duplicate type",
			doc: `
schema: t
types:
  - struct: S
    fields: []
  - struct: S
    fields: []
`,
			want: "duplicate type",
		},
		{
			name: "unknown requiredness",
			doc: `
schema: t
types:
  - struct: S
    fields:
      - {id: 1, name: x, type: i32, requiredness: mandatory}
`,
			want: "unknown requiredness",
		},
		{
			name: "untagged type entry",
			doc: `
schema: t
types:
  - doc: nothing here
`,
			want: "must set one of",
		},
		{
			name: "not yaml",
			doc:  "{{{",
			want: "failed to parse",
		},
	}

	provider := &YAMLProvider{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := provider.BuildSchema(context.Background(), YAMLInputOptions{Data: []byte(tc.doc)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestYAMLProvider_MissingFile(t *testing.T) {
	provider := &YAMLProvider{}
	_, err := provider.BuildSchema(context.Background(), YAMLInputOptions{Path: "/does/not/exist.yaml"})
	require.Error(t, err)
}
