package ir

// PrimitiveKind identifies a built-in schema primitive.
type PrimitiveKind int

const (
	PrimitiveBool PrimitiveKind = iota
	PrimitiveByte
	PrimitiveI16
	PrimitiveI32
	PrimitiveI64
	PrimitiveDouble
	PrimitiveString
	PrimitiveBinary
)

// String returns the schema-language spelling of the primitive.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBool:
		return "bool"
	case PrimitiveByte:
		return "byte"
	case PrimitiveI16:
		return "i16"
	case PrimitiveI32:
		return "i32"
	case PrimitiveI64:
		return "i64"
	case PrimitiveDouble:
		return "double"
	case PrimitiveString:
		return "string"
	case PrimitiveBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ParsePrimitive maps a schema-language spelling to its kind.
// Returns false for unknown spellings.
func ParsePrimitive(s string) (PrimitiveKind, bool) {
	switch s {
	case "bool":
		return PrimitiveBool, true
	case "byte":
		return PrimitiveByte, true
	case "i16":
		return PrimitiveI16, true
	case "i32":
		return PrimitiveI32, true
	case "i64":
		return PrimitiveI64, true
	case "double":
		return PrimitiveDouble, true
	case "string":
		return PrimitiveString, true
	case "binary":
		return PrimitiveBinary, true
	default:
		return 0, false
	}
}

// PrimitiveDescriptor represents a built-in primitive type.
type PrimitiveDescriptor struct {
	exprBase
	PrimitiveKind PrimitiveKind
}

// Kind returns KindPrimitive.
func (d *PrimitiveDescriptor) Kind() DescriptorKind { return KindPrimitive }

// Convenience constructors for common primitives.

// Bool returns a PrimitiveDescriptor for bool.
func Bool() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveBool}
}

// I32 returns a PrimitiveDescriptor for i32.
func I32() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveI32}
}

// I64 returns a PrimitiveDescriptor for i64.
func I64() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveI64}
}

// Double returns a PrimitiveDescriptor for double.
func Double() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveDouble}
}

// String returns a PrimitiveDescriptor for string.
func String() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveString}
}

// Binary returns a PrimitiveDescriptor for binary.
func Binary() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveBinary}
}
