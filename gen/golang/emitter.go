// Package golang emits Go binding packages from the intermediate
// representation. Each schema is emitted twice: a legacy-representation
// package that owns the canonical runtime descriptors, and a
// migrated-representation package that either aliases the legacy
// definitions (auto-migration on) or defines a parallel set
// (auto-migration off).
package golang

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/shiftgen/shiftgen/ir"
)

// generatedHeader marks emitted files per the Go convention for
// generated code.
const generatedHeader = "// Code generated by shiftgen. DO NOT EDIT."

// DefaultRuntimeImport is the import path of the runtime support
// package generated code registers its descriptors with.
const DefaultRuntimeImport = "github.com/shiftgen/shiftgen"

// Options configures binding emission.
type Options struct {
	// AutoMigrate selects whether the migrated package aliases the
	// legacy package or defines parallel descriptors.
	AutoMigrate bool

	// ImportBase is the Go import path of the directory the bindings
	// are emitted under, e.g. "github.com/example/app/bindings".
	// Required: the migrated package imports the legacy package
	// through it.
	ImportBase string

	// RuntimeImport overrides the runtime support import path.
	// Defaults to DefaultRuntimeImport.
	RuntimeImport string
}

// File is a single emitted source file. Path is relative to the
// output root, using forward slashes.
type File struct {
	Path    string
	Content []byte
}

// Emitter emits Go binding packages for one schema.
type Emitter struct {
	schema *ir.Schema
	opts   Options
}

// NewEmitter creates an Emitter for the given schema.
func NewEmitter(schema *ir.Schema, opts Options) *Emitter {
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = DefaultRuntimeImport
	}
	return &Emitter{schema: schema, opts: opts}
}

// Emit produces the legacy and migrated binding files.
func (e *Emitter) Emit() ([]File, []ir.Warning, error) {
	if e.opts.ImportBase == "" {
		return nil, nil, fmt.Errorf("import base is required")
	}
	if len(e.schema.Types) == 0 {
		return nil, nil, fmt.Errorf("schema %q has no types", e.schema.Info.Name)
	}

	pkgDir := packageName(e.schema.Info.Name)

	var warnings []ir.Warning

	legacy, legacyWarnings := e.emitDescriptorFile("legacy", false)
	warnings = append(warnings, legacyWarnings...)

	var migrated []byte
	if e.opts.AutoMigrate {
		migrated = e.emitMigratedAliases(pkgDir)
	} else {
		var migratedWarnings []ir.Warning
		migrated, migratedWarnings = e.emitDescriptorFile("migrated", true)
		warnings = append(warnings, migratedWarnings...)
	}

	return []File{
		{Path: path.Join(pkgDir, "legacy", "types.go"), Content: legacy},
		{Path: path.Join(pkgDir, "migrated", "types.go"), Content: migrated},
	}, warnings, nil
}

// emitDescriptorFile emits a package that defines descriptors itself:
// the legacy package always, and the migrated package when
// auto-migration is off.
func (e *Emitter) emitDescriptorFile(pkg string, migratedRep bool) ([]byte, []ir.Warning) {
	var buf bytes.Buffer
	var warnings []ir.Warning
	schemaName := e.schema.Info.Name

	buf.WriteString(generatedHeader + "\n\n")
	if migratedRep {
		buf.WriteString(fmt.Sprintf("// Package %s contains the migrated-representation bindings for\n", pkg))
		buf.WriteString(fmt.Sprintf("// the %s schema.\n", schemaName))
		buf.WriteString("//\n")
		buf.WriteString("// Generated with auto-migration disabled: this package defines its\n")
		buf.WriteString("// own descriptors, distinct from the legacy representation. They are\n")
		buf.WriteString("// not registered; the canonical registry entry stays with the legacy\n")
		buf.WriteString("// package.\n")
	} else {
		buf.WriteString(fmt.Sprintf("// Package %s contains the legacy-representation bindings for\n", pkg))
		buf.WriteString(fmt.Sprintf("// the %s schema.\n", schemaName))
	}
	buf.WriteString(fmt.Sprintf("package %s\n\n", pkg))
	buf.WriteString(fmt.Sprintf("import shiftgen %q\n", e.opts.RuntimeImport))

	for _, typ := range e.schema.Types {
		switch t := typ.(type) {
		case *ir.StructDescriptor:
			e.emitStructDescriptor(&buf, t, migratedRep)
		case *ir.EnumDescriptor:
			e.emitEnum(&buf, t)
		case *ir.AliasDescriptor:
			if w := e.emitAlias(&buf, t); w != nil {
				warnings = append(warnings, *w)
			}
		default:
			warnings = append(warnings, ir.Warning{
				Code:     "unsupported-type-kind",
				Message:  fmt.Sprintf("cannot emit %s as a top-level type", typ.Kind()),
				TypeName: typ.TypeName().Key(),
			})
		}
	}

	return buf.Bytes(), warnings
}

// emitStructDescriptor emits one runtime descriptor var. Legacy
// descriptors register with the default registry; off-mode migrated
// descriptors stay unregistered to keep the canonical entry unique.
func (e *Emitter) emitStructDescriptor(buf *bytes.Buffer, s *ir.StructDescriptor, migratedRep bool) {
	name := exportedName(s.Name.Name)
	rep := "RepLegacy"
	if migratedRep {
		rep = "RepMigrated"
	}

	buf.WriteString("\n")
	if !s.Documentation.IsZero() {
		emitDocComment(buf, s.Documentation)
	} else if migratedRep {
		buf.WriteString(fmt.Sprintf("// %s is the migrated-representation descriptor for %s.\n", name, s.Name.Key()))
	} else {
		buf.WriteString(fmt.Sprintf("// %s is the runtime descriptor for %s.\n", name, s.Name.Key()))
	}

	open := fmt.Sprintf("var %s = shiftgen.MustRegister(&shiftgen.Type{\n", name)
	closing := "})\n"
	if migratedRep {
		open = fmt.Sprintf("var %s = &shiftgen.Type{\n", name)
		closing = "}\n"
	}
	buf.WriteString(open)

	// Scalar keys pad to the widest so the literal survives gofmt.
	keyWidth := len("Schema:")
	if !migratedRep && e.opts.AutoMigrate {
		keyWidth = len("AutoMigrate:")
	}
	writeKV := func(key, value string) {
		buf.WriteString(fmt.Sprintf("\t%-*s %s,\n", keyWidth, key+":", value))
	}

	writeKV("Schema", fmt.Sprintf("%q", s.Name.Schema))
	writeKV("Name", fmt.Sprintf("%q", s.Name.Name))
	writeKV("Rep", "shiftgen."+rep)
	if !migratedRep && e.opts.AutoMigrate {
		writeKV("AutoMigrate", "true")
	}

	if len(s.Fields) == 0 {
		buf.WriteString("\tFields: []shiftgen.Field{},\n")
	} else {
		buf.WriteString("\tFields: []shiftgen.Field{\n")
		for _, f := range s.Fields {
			entry := fmt.Sprintf("{ID: %d, Name: %q, Type: %q", f.ID, f.Name, ir.ExprString(f.Type))
			if f.Requiredness != ir.Default {
				entry += fmt.Sprintf(", Requiredness: shiftgen.%s", exportedName(f.Requiredness.String()))
			}
			buf.WriteString("\t\t" + entry + "},\n")
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString(closing)
}

// emitEnum emits an enum as a defined int32 type plus constants.
func (e *Emitter) emitEnum(buf *bytes.Buffer, en *ir.EnumDescriptor) {
	name := exportedName(en.Name.Name)

	buf.WriteString("\n")
	if !en.Documentation.IsZero() {
		emitDocComment(buf, en.Documentation)
	} else {
		buf.WriteString(fmt.Sprintf("// %s is the generated enum for %s.\n", name, en.Name.Key()))
	}
	buf.WriteString(fmt.Sprintf("type %s int32\n", name))

	if len(en.Members) == 0 {
		return
	}

	width := 0
	for _, m := range en.Members {
		if n := len(name + "_" + exportedName(m.Name)); n > width {
			width = n
		}
	}

	buf.WriteString("\nconst (\n")
	for _, m := range en.Members {
		constName := name + "_" + exportedName(m.Name)
		buf.WriteString(fmt.Sprintf("\t%-*s %s = %d\n", width, constName, name, m.Value))
	}
	buf.WriteString(")\n")
}

// emitAlias emits a typedef as a Go type alias. Aliases of named types
// are skipped with a warning: structs have no Go type to alias, only a
// descriptor.
func (e *Emitter) emitAlias(buf *bytes.Buffer, al *ir.AliasDescriptor) *ir.Warning {
	goType, ok := goTypeString(al.Underlying)
	if !ok {
		return &ir.Warning{
			Code:     "alias-to-named-type",
			Message:  fmt.Sprintf("alias %s: underlying %s has no Go type", al.Name.Key(), ir.ExprString(al.Underlying)),
			TypeName: al.Name.Key(),
		}
	}

	name := exportedName(al.Name.Name)
	buf.WriteString("\n")
	if !al.Documentation.IsZero() {
		emitDocComment(buf, al.Documentation)
	} else {
		buf.WriteString(fmt.Sprintf("// %s is the generated alias for %s.\n", name, al.Name.Key()))
	}
	buf.WriteString(fmt.Sprintf("type %s = %s\n", name, goType))
	return nil
}

// emitMigratedAliases emits the migrated package under auto-migration:
// every name re-exports the legacy package's definition.
func (e *Emitter) emitMigratedAliases(pkgDir string) []byte {
	var buf bytes.Buffer
	schemaName := e.schema.Info.Name
	legacyImport := e.opts.ImportBase + "/" + pkgDir + "/legacy"

	buf.WriteString(generatedHeader + "\n\n")
	buf.WriteString("// Package migrated contains the migrated-representation bindings for\n")
	buf.WriteString(fmt.Sprintf("// the %s schema.\n", schemaName))
	buf.WriteString("//\n")
	buf.WriteString("// Generated with auto-migration enabled: every name in this package\n")
	buf.WriteString("// aliases the legacy package's definition, so both namespaces resolve\n")
	buf.WriteString("// to the identical descriptor.\n")
	buf.WriteString("package migrated\n\n")
	buf.WriteString(fmt.Sprintf("import legacy %q\n", legacyImport))

	for _, typ := range e.schema.Types {
		name := exportedName(typ.TypeName().Name)
		switch t := typ.(type) {
		case *ir.StructDescriptor:
			buf.WriteString("\n")
			buf.WriteString(fmt.Sprintf("// %s aliases the legacy descriptor for %s.\n", name, t.Name.Key()))
			buf.WriteString(fmt.Sprintf("var %s = legacy.%s\n", name, name))
		case *ir.EnumDescriptor:
			buf.WriteString("\n")
			buf.WriteString(fmt.Sprintf("// %s aliases the legacy enum for %s.\n", name, t.Name.Key()))
			buf.WriteString(fmt.Sprintf("type %s = legacy.%s\n", name, name))
			if len(t.Members) > 0 {
				width := 0
				for _, m := range t.Members {
					if n := len(name + "_" + exportedName(m.Name)); n > width {
						width = n
					}
				}
				buf.WriteString("\nconst (\n")
				for _, m := range t.Members {
					constName := name + "_" + exportedName(m.Name)
					buf.WriteString(fmt.Sprintf("\t%-*s = legacy.%s\n", width, constName, constName))
				}
				buf.WriteString(")\n")
			}
		case *ir.AliasDescriptor:
			if _, ok := goTypeString(t.Underlying); !ok {
				continue // skipped in the legacy package too
			}
			buf.WriteString("\n")
			buf.WriteString(fmt.Sprintf("// %s aliases the legacy typedef for %s.\n", name, t.Name.Key()))
			buf.WriteString(fmt.Sprintf("type %s = legacy.%s\n", name, name))
		}
	}

	return buf.Bytes()
}

// goTypeString maps an expression descriptor to its Go spelling.
// Returns false for named-type references.
func goTypeString(d ir.TypeDescriptor) (string, bool) {
	switch t := d.(type) {
	case *ir.PrimitiveDescriptor:
		switch t.PrimitiveKind {
		case ir.PrimitiveBool:
			return "bool", true
		case ir.PrimitiveByte:
			return "int8", true
		case ir.PrimitiveI16:
			return "int16", true
		case ir.PrimitiveI32:
			return "int32", true
		case ir.PrimitiveI64:
			return "int64", true
		case ir.PrimitiveDouble:
			return "float64", true
		case ir.PrimitiveString:
			return "string", true
		case ir.PrimitiveBinary:
			return "[]byte", true
		}
		return "", false
	case *ir.ListDescriptor:
		elem, ok := goTypeString(t.Element)
		if !ok {
			return "", false
		}
		return "[]" + elem, true
	case *ir.MapDescriptor:
		key, ok := goTypeString(t.Key)
		if !ok {
			return "", false
		}
		value, ok := goTypeString(t.Value)
		if !ok {
			return "", false
		}
		return "map[" + key + "]" + value, true
	default:
		return "", false
	}
}

// emitDocComment writes documentation as a // comment block.
func emitDocComment(buf *bytes.Buffer, doc ir.Documentation) {
	text := doc.Body
	if text == "" {
		text = doc.Summary
	}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line == "" {
			buf.WriteString("//\n")
		} else {
			buf.WriteString("// " + line + "\n")
		}
	}
}
