package shiftgen

import "fmt"

// Representation identifies which generated representation a binding
// belongs to. A schema compiled with shiftgen is emitted twice: once as
// the legacy representation and once as the migrated representation.
type Representation string

const (
	// RepLegacy is the original generated representation.
	RepLegacy Representation = "legacy"

	// RepMigrated is the newer generated representation. Under
	// auto-migration the migrated package re-exports the legacy
	// package's descriptors instead of defining its own.
	RepMigrated Representation = "migrated"
)

// Requiredness mirrors the schema-level field qualifier.
type Requiredness int

const (
	// Default fields are written when set and tolerated when absent.
	Default Requiredness = iota
	// Required fields must always be present.
	Required
	// Optional fields may be absent and distinguish unset from zero.
	Optional
)

// String returns the string representation of the requiredness.
func (r Requiredness) String() string {
	switch r {
	case Required:
		return "required"
	case Optional:
		return "optional"
	default:
		return "default"
	}
}

// Field is the runtime descriptor for a single field of a generated type.
type Field struct {
	// ID is the stable schema field ID. IDs survive renames, so
	// tooling keys on them rather than on names.
	ID int16

	// Name is the schema field name.
	Name string

	// Type is the rendered schema type expression, e.g. "i32",
	// "string" or "testing.Nested2".
	Type string

	// Requiredness is the field qualifier from the schema.
	Requiredness Requiredness
}

// Type is the runtime descriptor for a generated binding type. Generated
// packages construct one descriptor per schema type and register it with
// the process registry in their init functions.
//
// Identity matters: under auto-migration the migrated binding package
// aliases the legacy package's descriptor values, so two namespaces
// resolve to the same *Type and pointer comparison holds. Descriptors
// are never copied after registration.
type Type struct {
	// Schema is the schema (document) name the type was declared in.
	Schema string

	// Name is the type name as declared in the schema.
	Name string

	// Fields are the type's fields in declaration order.
	Fields []Field

	// Rep is the representation this descriptor was generated as.
	Rep Representation

	// AutoMigrate records whether the descriptor was generated with
	// auto-migration enabled. Baked in at generation time.
	AutoMigrate bool
}

// Key returns the canonical registry key, "schema.TypeName".
func (t *Type) Key() string {
	return t.Schema + "." + t.Name
}

// IsAutoMigrated reports whether this descriptor was generated with
// auto-migration enabled. This is the per-type marker; the process-wide
// answer is IsAutoMigrated on the registry.
func (t *Type) IsAutoMigrated() bool {
	return t.AutoMigrate
}

// FieldByID returns the field with the given schema ID, or false if the
// type has no such field.
func (t *Type) FieldByID(id int16) (Field, bool) {
	for _, f := range t.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByName returns the field with the given schema name, or false if
// the type has no such field.
func (t *Type) FieldByName(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// String returns a short human-readable description of the descriptor.
func (t *Type) String() string {
	return fmt.Sprintf("%s (%s, %d fields)", t.Key(), t.Rep, len(t.Fields))
}
