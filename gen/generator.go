package gen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shiftgen/shiftgen/gen/golang"
	"github.com/shiftgen/shiftgen/gen/provider"
	"github.com/shiftgen/shiftgen/gen/sink"
	"github.com/shiftgen/shiftgen/ir"
)

// Result describes one generation run.
type Result struct {
	// RunID uniquely identifies the run, for correlating logs with
	// emitted artifacts.
	RunID string

	// Schema is the resolved intermediate representation.
	Schema *ir.Schema

	// Files are the emitted files, relative to the output root.
	Files []golang.File

	// Warnings aggregates provider, checker and emitter warnings.
	Warnings []ir.Warning
}

// Generate runs the pipeline and returns the emitted files in memory
// without writing them anywhere. Use ToDir to write files to disk.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	return g.run(ctx, nil)
}

// ToDir runs the pipeline and writes the emitted files under dir.
func (g *Generator) ToDir(ctx context.Context, dir string) (*Result, error) {
	if dir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	return g.run(ctx, sink.NewFilesystemSink(dir))
}

// ToSink runs the pipeline and writes the emitted files to the given sink.
func (g *Generator) ToSink(ctx context.Context, out sink.OutputSink) (*Result, error) {
	if out == nil {
		return nil, fmt.Errorf("output sink is required")
	}
	return g.run(ctx, out)
}

func (g *Generator) run(ctx context.Context, out sink.OutputSink) (*Result, error) {
	logger := g.logger
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.NewString()

	if err := validate.Struct(g.cfg); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	schema, err := g.resolveSchema(ctx)
	if err != nil {
		return nil, err
	}

	checkWarnings, err := Check(schema)
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", schema.Info.Name, err)
	}

	emitter := golang.NewEmitter(schema, golang.Options{
		AutoMigrate:   g.cfg.AutoMigrate,
		ImportBase:    g.cfg.ImportBase,
		RuntimeImport: g.cfg.RuntimeImport,
	})
	files, emitWarnings, err := emitter.Emit()
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}

	if out != nil {
		for _, f := range files {
			if err := out.WriteFile(ctx, f.Path, f.Content); err != nil {
				return nil, fmt.Errorf("write %s: %w", f.Path, err)
			}
		}
	}

	result := &Result{
		RunID:    runID,
		Schema:   schema,
		Files:    files,
		Warnings: append(append(append([]ir.Warning{}, schema.Warnings...), checkWarnings...), emitWarnings...),
	}

	logger.Info("generated bindings",
		slog.String("run_id", runID),
		slog.String("schema", schema.Info.Name),
		slog.Bool("auto_migrate", g.cfg.AutoMigrate),
		slog.Int("types", len(schema.Types)),
		slog.Int("files", len(files)),
		slog.Int("warnings", len(result.Warnings)))
	return result, nil
}

// resolveSchema builds the intermediate representation from whichever
// input the generator was created with.
func (g *Generator) resolveSchema(ctx context.Context) (*ir.Schema, error) {
	if g.schema != nil {
		return g.schema, nil
	}

	if len(g.cfg.Packages) > 0 {
		p := &provider.SourceProvider{}
		return p.BuildSchema(ctx, provider.SourceInputOptions{
			Packages:   g.cfg.Packages,
			SchemaName: g.cfg.SchemaName,
			RootTypes:  g.cfg.RootTypes,
		})
	}

	p := &provider.YAMLProvider{}
	schema, err := p.BuildSchema(ctx, provider.YAMLInputOptions{Path: g.cfg.SchemaFile})
	if err != nil {
		return nil, err
	}
	if g.cfg.SchemaName != "" && g.cfg.SchemaName != schema.Info.Name {
		renameSchema(schema, g.cfg.SchemaName)
	}
	return schema, nil
}

// renameSchema rewrites the schema name after a WithSchemaName
// override, including same-schema references inside fields.
func renameSchema(schema *ir.Schema, name string) {
	old := schema.Info.Name
	schema.Info.Name = name
	for _, t := range schema.Types {
		switch d := t.(type) {
		case *ir.StructDescriptor:
			d.Name.Schema = name
			for i := range d.Fields {
				renameRefs(d.Fields[i].Type, old, name)
			}
		case *ir.AliasDescriptor:
			d.Name.Schema = name
			renameRefs(d.Underlying, old, name)
		case *ir.EnumDescriptor:
			d.Name.Schema = name
		}
	}
}

func renameRefs(t ir.TypeDescriptor, old, name string) {
	switch d := t.(type) {
	case *ir.ReferenceDescriptor:
		if d.Target.Schema == old {
			d.Target.Schema = name
		}
	case *ir.ListDescriptor:
		renameRefs(d.Element, old, name)
	case *ir.MapDescriptor:
		renameRefs(d.Key, old, name)
		renameRefs(d.Value, old, name)
	}
}
