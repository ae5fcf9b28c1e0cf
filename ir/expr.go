package ir

// ListDescriptor represents an ordered collection, list<Element>.
type ListDescriptor struct {
	exprBase
	Element TypeDescriptor
}

// Kind returns KindList.
func (d *ListDescriptor) Kind() DescriptorKind { return KindList }

// List returns a ListDescriptor with the given element type.
func List(element TypeDescriptor) *ListDescriptor {
	return &ListDescriptor{Element: element}
}

// MapDescriptor represents a key-value mapping, map<Key, Value>.
type MapDescriptor struct {
	exprBase
	Key   TypeDescriptor
	Value TypeDescriptor
}

// Kind returns KindMap.
func (d *MapDescriptor) Kind() DescriptorKind { return KindMap }

// Map returns a MapDescriptor with the given key and value types.
func Map(key, value TypeDescriptor) *MapDescriptor {
	return &MapDescriptor{Key: key, Value: value}
}

// ReferenceDescriptor represents a reference to another named type.
// The referenced type appears in Schema.Types under the same identifier.
type ReferenceDescriptor struct {
	exprBase
	Target Identifier
}

// Kind returns KindReference.
func (d *ReferenceDescriptor) Kind() DescriptorKind { return KindReference }

// Ref returns a ReferenceDescriptor pointing at the named type.
func Ref(schema, name string) *ReferenceDescriptor {
	return &ReferenceDescriptor{Target: Identifier{Name: name, Schema: schema}}
}

// ExprString renders a descriptor in its schema-language spelling.
// Named types render as schema-qualified references.
func ExprString(d TypeDescriptor) string {
	switch t := d.(type) {
	case *PrimitiveDescriptor:
		return t.PrimitiveKind.String()
	case *ListDescriptor:
		return "list<" + ExprString(t.Element) + ">"
	case *MapDescriptor:
		return "map<" + ExprString(t.Key) + ", " + ExprString(t.Value) + ">"
	case *ReferenceDescriptor:
		return t.Target.Key()
	default:
		return d.TypeName().Key()
	}
}
