package provider

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"

	"github.com/shiftgen/shiftgen/ir"
)

// SourceProvider extracts schema types by analyzing Go source code.
// Exported struct types become struct descriptors; field IDs come from
// the `shift` struct tag (`shift:"1"` or `shift:"1,required"`), falling
// back to declaration position.
type SourceProvider struct{}

// SourceInputOptions configures source-based schema extraction.
type SourceInputOptions struct {
	// Packages are the Go package paths to analyze.
	Packages []string

	// SchemaName overrides the schema name. Defaults to the name of
	// the first input package.
	SchemaName string

	// RootTypes are the type names to extract. If empty, all exported
	// struct types in the packages are extracted.
	RootTypes []string
}

// BuildSchema analyzes source code and returns a Schema.
func (p *SourceProvider) BuildSchema(ctx context.Context, opts SourceInputOptions) (*ir.Schema, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	// packages.Load returns packages in dependency order, not input
	// order; pick the first input package for schema naming.
	mainPkg := pkgs[0]
	for _, pkg := range pkgs {
		if pkg.PkgPath == opts.Packages[0] {
			mainPkg = pkg
			break
		}
	}

	schemaName := opts.SchemaName
	if schemaName == "" {
		schemaName = mainPkg.Name
	}

	schema := &ir.Schema{
		Info: ir.SchemaInfo{Name: schemaName, Path: mainPkg.PkgPath},
	}

	roots := make(map[string]bool, len(opts.RootTypes))
	for _, r := range opts.RootTypes {
		roots[r] = true
	}

	for _, pkg := range pkgs {
		docs := typeDocs(pkg)
		scope := pkg.Types.Scope()

		names := scope.Names()
		sort.Strings(names)
		for _, name := range names {
			if !ast.IsExported(name) {
				continue
			}
			if len(roots) > 0 && !roots[name] {
				continue
			}
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || obj.IsAlias() {
				continue
			}
			structType, ok := obj.Type().Underlying().(*types.Struct)
			if !ok {
				continue
			}

			st, warnings := buildStructFromGo(schemaName, name, structType)
			st.Documentation = docs[name]
			schema.AddType(st)
			schema.Warnings = append(schema.Warnings, warnings...)
		}
	}

	if len(schema.Types) == 0 {
		return nil, fmt.Errorf("no extractable struct types in %v", opts.Packages)
	}
	if err := checkNames(schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// buildStructFromGo converts a Go struct type to a struct descriptor.
func buildStructFromGo(schemaName, name string, structType *types.Struct) (*ir.StructDescriptor, []ir.Warning) {
	st := &ir.StructDescriptor{
		Name: ir.Identifier{Name: name, Schema: schemaName},
	}
	var warnings []ir.Warning

	nextID := int16(1)
	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)
		if !field.Exported() {
			continue
		}

		id, req, err := parseShiftTag(structType.Tag(i))
		if err != nil {
			warnings = append(warnings, ir.Warning{
				Code:     "bad-field-tag",
				Message:  fmt.Sprintf("field %s: %v", field.Name(), err),
				TypeName: name,
			})
			continue
		}
		if id == 0 {
			id = nextID
		}
		nextID = id + 1

		fieldType := field.Type()
		if ptr, ok := fieldType.(*types.Pointer); ok {
			fieldType = ptr.Elem()
			if req == ir.Default {
				req = ir.Optional
			}
		}

		desc, ok := goTypeToIR(schemaName, fieldType)
		if !ok {
			warnings = append(warnings, ir.Warning{
				Code:     "unsupported-field-type",
				Message:  fmt.Sprintf("field %s: unsupported type %s", field.Name(), field.Type()),
				TypeName: name,
			})
			continue
		}

		st.Fields = append(st.Fields, ir.FieldDescriptor{
			ID:           id,
			Name:         fieldName(field.Name()),
			Type:         desc,
			Requiredness: req,
		})
	}
	return st, warnings
}

// parseShiftTag reads the `shift` struct tag: `shift:"3"` or
// `shift:"3,required"`. A zero ID means "use declaration position".
func parseShiftTag(tag string) (int16, ir.Requiredness, error) {
	value, ok := reflect.StructTag(tag).Lookup("shift")
	if !ok || value == "" {
		return 0, ir.Default, nil
	}

	idPart, option, _ := strings.Cut(value, ",")
	id, err := strconv.ParseInt(idPart, 10, 16)
	if err != nil || id <= 0 {
		return 0, ir.Default, fmt.Errorf("invalid field ID %q", idPart)
	}
	req, err := parseRequiredness(option)
	if err != nil {
		return 0, ir.Default, err
	}
	return int16(id), req, nil
}

// goTypeToIR maps a Go type to its schema descriptor.
func goTypeToIR(schemaName string, t types.Type) (ir.TypeDescriptor, bool) {
	switch typ := t.(type) {
	case *types.Basic:
		switch typ.Kind() {
		case types.Bool:
			return ir.Bool(), true
		case types.Int8, types.Uint8:
			return &ir.PrimitiveDescriptor{PrimitiveKind: ir.PrimitiveByte}, true
		case types.Int16:
			return &ir.PrimitiveDescriptor{PrimitiveKind: ir.PrimitiveI16}, true
		case types.Int32, types.Int:
			return ir.I32(), true
		case types.Int64:
			return ir.I64(), true
		case types.Float32, types.Float64:
			return ir.Double(), true
		case types.String:
			return ir.String(), true
		default:
			return nil, false
		}
	case *types.Slice:
		if basic, ok := typ.Elem().(*types.Basic); ok && basic.Kind() == types.Byte {
			return ir.Binary(), true
		}
		elem, ok := goTypeToIR(schemaName, typ.Elem())
		if !ok {
			return nil, false
		}
		return ir.List(elem), true
	case *types.Map:
		key, ok := goTypeToIR(schemaName, typ.Key())
		if !ok {
			return nil, false
		}
		value, ok := goTypeToIR(schemaName, typ.Elem())
		if !ok {
			return nil, false
		}
		return ir.Map(key, value), true
	case *types.Named:
		if _, ok := typ.Underlying().(*types.Struct); !ok {
			return nil, false
		}
		return ir.Ref(schemaName, typ.Obj().Name()), true
	default:
		return nil, false
	}
}

// fieldName converts a Go field name to its schema spelling: leading
// rune lowered, matching the convention of hand-written schema docs.
func fieldName(goName string) string {
	r, size := utf8.DecodeRuneInString(goName)
	if r == utf8.RuneError {
		return goName
	}
	return string(unicode.ToLower(r)) + goName[size:]
}

// typeDocs extracts doc comments for type declarations in the package.
func typeDocs(pkg *packages.Package) map[string]ir.Documentation {
	docs := make(map[string]ir.Documentation)
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil {
					doc = genDecl.Doc
				}
				if doc == nil {
					continue
				}
				text := strings.TrimSpace(doc.Text())
				if text == "" {
					continue
				}
				docs[typeSpec.Name.Name] = docFromString(text)
			}
		}
	}
	return docs
}
