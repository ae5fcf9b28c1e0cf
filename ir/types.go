package ir

// Identifier names a schema entity within its schema document.
type Identifier struct {
	// Name is the type name as declared, e.g. "Nested1".
	Name string

	// Schema is the schema document name, e.g. "testing".
	// Empty for builtin types.
	Schema string
}

// IsZero returns true if the identifier is empty.
func (id Identifier) IsZero() bool {
	return id.Name == "" && id.Schema == ""
}

// Key returns the canonical "schema.Name" form, or just Name when the
// identifier has no schema.
func (id Identifier) Key() string {
	if id.Schema == "" {
		return id.Name
	}
	return id.Schema + "." + id.Name
}

// Documentation holds documentation comments attached to a declaration.
type Documentation struct {
	// Summary is the first sentence, suitable for brief descriptions.
	Summary string

	// Body is the complete documentation text, including the summary.
	Body string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Body == ""
}

// Source represents source location information for a declaration.
type Source struct {
	File string
	Line int
}

// IsZero returns true if the source location is empty.
func (s Source) IsZero() bool {
	return s.File == "" && s.Line == 0
}

// Warning represents a non-fatal issue encountered while building a schema.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string
}

// SchemaInfo describes a schema document.
type SchemaInfo struct {
	// Name is the schema name, e.g. "testing". Used as the namespace
	// prefix for registry keys.
	Name string

	// Path is the source location the schema was loaded from, if known.
	Path string
}

// IsZero returns true if the schema info is empty.
func (s SchemaInfo) IsZero() bool {
	return s.Name == "" && s.Path == ""
}
