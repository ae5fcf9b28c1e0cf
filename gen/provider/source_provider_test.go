package provider

import (
	"context"
	"testing"

	"github.com/shiftgen/shiftgen/ir"
)

func findType(schema *ir.Schema, name string) ir.TypeDescriptor {
	for _, t := range schema.Types {
		if t.TypeName().Name == name {
			return t
		}
	}
	return nil
}

func findField(fields []ir.FieldDescriptor, name string) *ir.FieldDescriptor {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}

func TestSourceProvider_NestedChain(t *testing.T) {
	provider := &SourceProvider{}
	schema, err := provider.BuildSchema(context.Background(), SourceInputOptions{
		Packages:   []string{"github.com/shiftgen/shiftgen/gen/provider/testdata"},
		SchemaName: "testing",
		RootTypes:  []string{"Nested1", "Nested2", "Nested3"},
	})
	if err != nil {
		t.Fatalf("BuildSchema failed: %v", err)
	}

	if schema.Info.Name != "testing" {
		t.Errorf("schema name = %q, want testing", schema.Info.Name)
	}
	if len(schema.Types) != 3 {
		t.Fatalf("expected 3 types, got %d", len(schema.Types))
	}

	nested1, ok := findType(schema, "Nested1").(*ir.StructDescriptor)
	if !ok {
		t.Fatal("Nested1 not extracted as struct")
	}
	if nested1.Documentation.Summary == "" {
		t.Error("Nested1 should carry its doc comment")
	}

	a := findField(nested1.Fields, "a")
	if a == nil {
		t.Fatal("field a not found")
	}
	if a.ID != 1 {
		t.Errorf("field a ID = %d, want 1", a.ID)
	}
	ref, ok := a.Type.(*ir.ReferenceDescriptor)
	if !ok {
		t.Fatalf("field a type = %T, want reference", a.Type)
	}
	if ref.Target.Key() != "testing.Nested2" {
		t.Errorf("field a target = %s, want testing.Nested2", ref.Target.Key())
	}

	nested3 := findType(schema, "Nested3").(*ir.StructDescriptor)
	c := findField(nested3.Fields, "c")
	if c == nil {
		t.Fatal("field c not found")
	}
	if c.Requiredness != ir.Optional {
		t.Errorf("field c requiredness = %v, want optional", c.Requiredness)
	}
	if prim, ok := c.Type.(*ir.PrimitiveDescriptor); !ok || prim.PrimitiveKind != ir.PrimitiveI32 {
		t.Errorf("field c type = %v, want i32", c.Type)
	}
}

func TestSourceProvider_FieldTypeMapping(t *testing.T) {
	provider := &SourceProvider{}
	schema, err := provider.BuildSchema(context.Background(), SourceInputOptions{
		Packages:   []string{"github.com/shiftgen/shiftgen/gen/provider/testdata"},
		SchemaName: "testing",
		RootTypes:  []string{"Person"},
	})
	if err != nil {
		t.Fatalf("BuildSchema failed: %v", err)
	}

	person, ok := findType(schema, "Person").(*ir.StructDescriptor)
	if !ok {
		t.Fatal("Person not extracted")
	}

	cases := []struct {
		field string
		want  string
		req   ir.Requiredness
	}{
		{"name", "string", ir.Required},
		{"age", "i16", ir.Default},
		{"emails", "list<string>", ir.Default},
		{"scores", "map<string, i64>", ir.Default},
		{"avatar", "binary", ir.Default},
		{"manager", "testing.Person", ir.Optional}, // pointer implies optional
		{"height", "double", ir.Default},
	}
	for _, tc := range cases {
		f := findField(person.Fields, tc.field)
		if f == nil {
			t.Errorf("field %s not found", tc.field)
			continue
		}
		if got := RenderTypeExpr(f.Type); got != tc.want {
			t.Errorf("field %s: type = %q, want %q", tc.field, got, tc.want)
		}
		if f.Requiredness != tc.req {
			t.Errorf("field %s: requiredness = %v, want %v", tc.field, f.Requiredness, tc.req)
		}
	}

	// Untagged field continues the ID sequence after the last tag.
	height := findField(person.Fields, "height")
	if height != nil && height.ID != 7 {
		t.Errorf("height ID = %d, want 7", height.ID)
	}
}

func TestSourceProvider_DefaultSchemaName(t *testing.T) {
	provider := &SourceProvider{}
	schema, err := provider.BuildSchema(context.Background(), SourceInputOptions{
		Packages:  []string{"github.com/shiftgen/shiftgen/gen/provider/testdata"},
		RootTypes: []string{"Nested1"},
	})
	if err != nil {
		t.Fatalf("BuildSchema failed: %v", err)
	}
	if schema.Info.Name != "testdata" {
		t.Errorf("schema name = %q, want package name testdata", schema.Info.Name)
	}
}

func TestSourceProvider_NoPackages(t *testing.T) {
	provider := &SourceProvider{}
	if _, err := provider.BuildSchema(context.Background(), SourceInputOptions{}); err == nil {
		t.Error("expected error for empty package list")
	}
}

func TestFieldName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"A", "a"},
		{"already", "already"},
		{"ID2", "iD2"},
		{"Émile", "émile"}, // multi-byte leading rune stays one rune
		{"Ü", "ü"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := fieldName(tc.in); got != tc.want {
			t.Errorf("fieldName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSourceProvider_SkipsUnexported(t *testing.T) {
	provider := &SourceProvider{}
	schema, err := provider.BuildSchema(context.Background(), SourceInputOptions{
		Packages:   []string{"github.com/shiftgen/shiftgen/gen/provider/testdata"},
		SchemaName: "testing",
	})
	if err != nil {
		t.Fatalf("BuildSchema failed: %v", err)
	}
	if findType(schema, "unexported") != nil {
		t.Error("unexported types must not be extracted")
	}
}
