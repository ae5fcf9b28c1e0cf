package ir

// Schema represents a complete schema document: the set of named types
// to generate bindings for.
type Schema struct {
	// Info is the schema document information. Info.Name becomes the
	// namespace prefix for registry keys.
	Info SchemaInfo

	// Types contains top-level named type descriptors in declaration
	// order. Only Struct, Alias, and Enum descriptors appear here;
	// expression types (Primitive, List, Map, Reference) appear nested
	// within fields.
	Types []TypeDescriptor

	// Warnings contains non-fatal issues encountered during schema
	// building.
	Warnings []Warning
}

// AddType adds a named type descriptor to the schema.
func (s *Schema) AddType(t TypeDescriptor) {
	s.Types = append(s.Types, t)
}

// AddWarning adds a warning to the schema.
func (s *Schema) AddWarning(w Warning) {
	s.Warnings = append(s.Warnings, w)
}

// FindType looks up a named type by identifier. Returns nil if not found.
func (s *Schema) FindType(name Identifier) TypeDescriptor {
	for _, t := range s.Types {
		if t.TypeName() == name {
			return t
		}
	}
	return nil
}

// Structs returns the struct descriptors in declaration order.
func (s *Schema) Structs() []*StructDescriptor {
	var out []*StructDescriptor
	for _, t := range s.Types {
		if st, ok := t.(*StructDescriptor); ok {
			out = append(out, st)
		}
	}
	return out
}
