package ir

// Requiredness is the schema-level field qualifier.
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

// StructDescriptor represents a structured type with identified fields.
type StructDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Fields contains all fields in declaration order.
	Fields []FieldDescriptor

	// Documentation for this type.
	Documentation Documentation

	// Source location of the declaration.
	Source Source
}

// Kind returns KindStruct.
func (d *StructDescriptor) Kind() DescriptorKind { return KindStruct }

// TypeName returns the struct's name.
func (d *StructDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the struct's documentation.
func (d *StructDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the struct's source location.
func (d *StructDescriptor) Src() Source { return d.Source }

func (*StructDescriptor) sealed() {}

// FieldDescriptor represents a single field within a struct.
type FieldDescriptor struct {
	// ID is the stable schema field ID. IDs must be positive and
	// unique within the struct; they survive field renames.
	ID int16

	// Name is the field name as declared.
	Name string

	// Type is the field's type descriptor.
	Type TypeDescriptor

	// Requiredness is the field qualifier.
	Requiredness Requiredness

	// Documentation for this field.
	Documentation Documentation
}
