package gen

import (
	"fmt"

	"github.com/shiftgen/shiftgen/ir"
)

// Check validates schema semantics before emission: duplicate type
// names, field ID hygiene, and reference resolution. Same-schema
// references must resolve; cross-schema references only produce a
// warning, since the referenced document may be generated separately.
func Check(schema *ir.Schema) ([]ir.Warning, error) {
	if schema == nil {
		return nil, fmt.Errorf("schema is nil")
	}
	if schema.Info.Name == "" {
		return nil, fmt.Errorf("schema has no name")
	}

	names := make(map[ir.Identifier]bool, len(schema.Types))
	for _, t := range schema.Types {
		name := t.TypeName()
		if names[name] {
			return nil, fmt.Errorf("duplicate type %s", name.Key())
		}
		names[name] = true
	}

	var warnings []ir.Warning
	for _, t := range schema.Types {
		st, ok := t.(*ir.StructDescriptor)
		if !ok {
			continue
		}

		seenIDs := make(map[int16]string, len(st.Fields))
		for _, f := range st.Fields {
			if f.ID <= 0 {
				return nil, fmt.Errorf("%s: field %q: ID must be positive, got %d", st.Name.Key(), f.Name, f.ID)
			}
			if prev, dup := seenIDs[f.ID]; dup {
				return nil, fmt.Errorf("%s: field %q reuses ID %d of field %q", st.Name.Key(), f.Name, f.ID, prev)
			}
			seenIDs[f.ID] = f.Name

			w, err := checkRefs(schema, names, st.Name, f.Name, f.Type)
			if err != nil {
				return nil, err
			}
			warnings = append(warnings, w...)
		}
	}
	return warnings, nil
}

func checkRefs(schema *ir.Schema, names map[ir.Identifier]bool, owner ir.Identifier, field string, t ir.TypeDescriptor) ([]ir.Warning, error) {
	switch d := t.(type) {
	case *ir.ReferenceDescriptor:
		if d.Target.Schema != schema.Info.Name {
			return []ir.Warning{{
				Code:     "cross-schema-reference",
				Message:  fmt.Sprintf("field %q references %s from another schema", field, d.Target.Key()),
				TypeName: owner.Key(),
			}}, nil
		}
		if !names[d.Target] {
			return nil, fmt.Errorf("%s: field %q references unknown type %s", owner.Key(), field, d.Target.Key())
		}
		return nil, nil
	case *ir.ListDescriptor:
		return checkRefs(schema, names, owner, field, d.Element)
	case *ir.MapDescriptor:
		keyWarnings, err := checkRefs(schema, names, owner, field, d.Key)
		if err != nil {
			return nil, err
		}
		valueWarnings, err := checkRefs(schema, names, owner, field, d.Value)
		if err != nil {
			return nil, err
		}
		return append(keyWarnings, valueWarnings...), nil
	default:
		return nil, nil
	}
}
