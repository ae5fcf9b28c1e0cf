// Package provider implements input providers that build the
// intermediate representation from schema documents or annotated Go
// source.
package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shiftgen/shiftgen/ir"
)

// YAMLProvider builds a schema from a YAML schema document.
type YAMLProvider struct{}

// YAMLInputOptions configures YAML-based schema loading.
type YAMLInputOptions struct {
	// Path is the schema file to load. Ignored when Data is set.
	Path string

	// Data is raw document content, used instead of reading Path.
	Data []byte
}

// yamlDocument is the on-disk shape of a schema document.
type yamlDocument struct {
	Schema string     `yaml:"schema"`
	Types  []yamlType `yaml:"types"`
}

type yamlType struct {
	Struct  string       `yaml:"struct"`
	Alias   string       `yaml:"alias"`
	Enum    string       `yaml:"enum"`
	Doc     string       `yaml:"doc"`
	Type    string       `yaml:"type"` // alias underlying
	Fields  []yamlField  `yaml:"fields"`
	Members []yamlMember `yaml:"members"`
}

type yamlField struct {
	ID           int16  `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Requiredness string `yaml:"requiredness"`
	Doc          string `yaml:"doc"`
}

type yamlMember struct {
	Name  string `yaml:"name"`
	Value int32  `yaml:"value"`
	Doc   string `yaml:"doc"`
}

// BuildSchema parses a YAML schema document and returns a Schema.
func (p *YAMLProvider) BuildSchema(ctx context.Context, opts YAMLInputOptions) (*ir.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := opts.Data
	if data == nil {
		if opts.Path == "" {
			return nil, fmt.Errorf("no schema document specified")
		}
		var err error
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema document: %w", err)
		}
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}
	if doc.Schema == "" {
		return nil, fmt.Errorf("schema document missing top-level %q key", "schema")
	}

	schema := &ir.Schema{
		Info: ir.SchemaInfo{Name: doc.Schema, Path: opts.Path},
	}

	for i, yt := range doc.Types {
		switch {
		case yt.Struct != "":
			st, err := p.buildStruct(doc.Schema, yt)
			if err != nil {
				return nil, err
			}
			schema.AddType(st)
		case yt.Alias != "":
			al, err := p.buildAlias(doc.Schema, yt)
			if err != nil {
				return nil, err
			}
			schema.AddType(al)
		case yt.Enum != "":
			schema.AddType(p.buildEnum(doc.Schema, yt))
		default:
			return nil, fmt.Errorf("types[%d]: must set one of struct, alias, enum", i)
		}
	}

	if err := checkNames(schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func (p *YAMLProvider) buildStruct(schemaName string, yt yamlType) (*ir.StructDescriptor, error) {
	st := &ir.StructDescriptor{
		Name:          ir.Identifier{Name: yt.Struct, Schema: schemaName},
		Documentation: docFromString(yt.Doc),
	}

	seenIDs := make(map[int16]string)
	seenNames := make(map[string]bool)
	for _, yf := range yt.Fields {
		if yf.ID <= 0 {
			return nil, fmt.Errorf("struct %s: field %q: ID must be positive, got %d", yt.Struct, yf.Name, yf.ID)
		}
		if prev, ok := seenIDs[yf.ID]; ok {
			return nil, fmt.Errorf("struct %s: field %q reuses ID %d of field %q", yt.Struct, yf.Name, yf.ID, prev)
		}
		if seenNames[yf.Name] {
			return nil, fmt.Errorf("struct %s: duplicate field name %q", yt.Struct, yf.Name)
		}
		seenIDs[yf.ID] = yf.Name
		seenNames[yf.Name] = true

		typ, err := ParseTypeExpr(schemaName, yf.Type)
		if err != nil {
			return nil, fmt.Errorf("struct %s: field %q: %w", yt.Struct, yf.Name, err)
		}
		req, err := parseRequiredness(yf.Requiredness)
		if err != nil {
			return nil, fmt.Errorf("struct %s: field %q: %w", yt.Struct, yf.Name, err)
		}

		st.Fields = append(st.Fields, ir.FieldDescriptor{
			ID:            yf.ID,
			Name:          yf.Name,
			Type:          typ,
			Requiredness:  req,
			Documentation: docFromString(yf.Doc),
		})
	}
	return st, nil
}

func (p *YAMLProvider) buildAlias(schemaName string, yt yamlType) (*ir.AliasDescriptor, error) {
	underlying, err := ParseTypeExpr(schemaName, yt.Type)
	if err != nil {
		return nil, fmt.Errorf("alias %s: %w", yt.Alias, err)
	}
	return &ir.AliasDescriptor{
		Name:          ir.Identifier{Name: yt.Alias, Schema: schemaName},
		Underlying:    underlying,
		Documentation: docFromString(yt.Doc),
	}, nil
}

func (p *YAMLProvider) buildEnum(schemaName string, yt yamlType) *ir.EnumDescriptor {
	e := &ir.EnumDescriptor{
		Name:          ir.Identifier{Name: yt.Enum, Schema: schemaName},
		Documentation: docFromString(yt.Doc),
	}
	for _, m := range yt.Members {
		e.Members = append(e.Members, ir.EnumMember{
			Name:          m.Name,
			Value:         m.Value,
			Documentation: docFromString(m.Doc),
		})
	}
	return e
}

func parseRequiredness(s string) (ir.Requiredness, error) {
	switch s {
	case "", "default":
		return ir.Default, nil
	case "required":
		return ir.Required, nil
	case "optional":
		return ir.Optional, nil
	default:
		return 0, fmt.Errorf("unknown requiredness %q", s)
	}
}

func docFromString(s string) ir.Documentation {
	if s == "" {
		return ir.Documentation{}
	}
	summary := s
	if idx := strings.IndexAny(s, ".\n"); idx >= 0 {
		summary = strings.TrimSpace(s[:idx+1])
	}
	return ir.Documentation{Summary: summary, Body: s}
}

// checkNames rejects duplicate top-level type names.
func checkNames(s *ir.Schema) error {
	seen := make(map[ir.Identifier]bool)
	for _, t := range s.Types {
		name := t.TypeName()
		if seen[name] {
			return fmt.Errorf("duplicate type %s", name.Key())
		}
		seen[name] = true
	}
	return nil
}
