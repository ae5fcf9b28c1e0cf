// Package ir defines the intermediate representation for schema types.
// Providers build an ir.Schema from schema documents or annotated Go
// source, and the emitter transforms it into generated binding packages.
package ir

// DescriptorKind identifies the category of a type descriptor.
type DescriptorKind int

const (
	// Named type descriptors (appear in Schema.Types)
	KindStruct DescriptorKind = iota // Structured type with identified fields
	KindAlias                        // Named alias of another type
	KindEnum                         // Enumeration of named constants

	// Expression type descriptors (appear nested in fields)
	KindPrimitive // Built-in primitive type
	KindList      // Ordered collection (list<T>)
	KindMap       // Key-value mapping (map<K, V>)
	KindReference // Reference to another named type
)

// String returns the string representation of the descriptor kind.
func (k DescriptorKind) String() string {
	switch k {
	case KindStruct:
		return "Struct"
	case KindAlias:
		return "Alias"
	case KindEnum:
		return "Enum"
	case KindPrimitive:
		return "Primitive"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	case KindReference:
		return "Reference"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the base interface for all type descriptors.
type TypeDescriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() DescriptorKind

	// TypeName returns the canonical name of this type.
	// Returns zero value for expression types (primitives, lists, maps).
	TypeName() Identifier

	// Doc returns associated documentation comments.
	// Returns zero value for expression types.
	Doc() Documentation

	// Src returns the original source location.
	// Returns zero value for expression types.
	Src() Source

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}

// exprBase provides zero-value implementations of TypeDescriptor methods
// for expression type descriptors that don't have names, docs, or source.
type exprBase struct{}

func (exprBase) TypeName() Identifier { return Identifier{} }
func (exprBase) Doc() Documentation   { return Documentation{} }
func (exprBase) Src() Source          { return Source{} }
func (exprBase) sealed()              {}
