package ir

// AliasDescriptor represents a named alias of another type
// (a typedef in schema-language terms).
type AliasDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Underlying is the aliased type.
	Underlying TypeDescriptor

	// Documentation for this type.
	Documentation Documentation

	// Source location of the declaration.
	Source Source
}

// Kind returns KindAlias.
func (d *AliasDescriptor) Kind() DescriptorKind { return KindAlias }

// TypeName returns the alias's name.
func (d *AliasDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the alias's documentation.
func (d *AliasDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the alias's source location.
func (d *AliasDescriptor) Src() Source { return d.Source }

func (*AliasDescriptor) sealed() {}
