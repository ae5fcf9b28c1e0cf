package ir

// EnumDescriptor represents an enumeration of named constants.
type EnumDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Members contains the enum members in declaration order.
	Members []EnumMember

	// Documentation for this type.
	Documentation Documentation

	// Source location of the declaration.
	Source Source
}

// EnumMember is a single named enum constant.
type EnumMember struct {
	// Name is the member name as declared.
	Name string

	// Value is the member's numeric value.
	Value int32

	// Documentation for this member.
	Documentation Documentation
}

// Kind returns KindEnum.
func (d *EnumDescriptor) Kind() DescriptorKind { return KindEnum }

// TypeName returns the enum's name.
func (d *EnumDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the enum's documentation.
func (d *EnumDescriptor) Doc() Documentation { return d.Documentation }

// Src returns the enum's source location.
func (d *EnumDescriptor) Src() Source { return d.Source }

func (*EnumDescriptor) sealed() {}

// MemberByName returns the member with the given name, or false.
func (d *EnumDescriptor) MemberByName(name string) (EnumMember, bool) {
	for _, m := range d.Members {
		if m.Name == name {
			return m, true
		}
	}
	return EnumMember{}, false
}
