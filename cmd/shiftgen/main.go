package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/shiftgen/shiftgen/gen"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate legacy and migrated binding packages."`
	Check   CheckCmd   `cmd:"" help:"Validate a schema without generating files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

// inputFlags are shared by gen and check: a schema is read either from
// a YAML document or extracted from annotated Go packages.
type inputFlags struct {
	Schema     string   `help:"YAML schema document to load." short:"s" type:"existingfile" xor:"input"`
	Packages   []string `help:"Go packages to extract schema structs from." short:"p" xor:"input"`
	SchemaName string   `help:"Override the schema name from the input." name:"schema-name"`
	RootTypes  []string `help:"Limit source extraction to the named types." name:"root-types"`
}

func (f *inputFlags) apply() (*gen.Generator, error) {
	var g *gen.Generator
	switch {
	case f.Schema != "":
		g = gen.FromFile(f.Schema)
	case len(f.Packages) > 0:
		g = gen.FromPackages(f.Packages...)
	default:
		return nil, fmt.Errorf("one of --schema or --packages is required")
	}
	if f.SchemaName != "" {
		g = g.WithSchemaName(f.SchemaName)
	}
	if len(f.RootTypes) > 0 {
		g = g.WithRootTypes(f.RootTypes...)
	}
	return g, nil
}

type GenCmd struct {
	Out string `arg:"" help:"Output directory for generated packages."`
	inputFlags
	ImportBase    string `help:"Go import path of the output directory." name:"import-base" required:""`
	RuntimeImport string `help:"Override the runtime support import path." name:"runtime-import"`
	AutoMigrate   bool   `help:"Alias the migrated package to the legacy package." name:"auto-migrate"`
	Watch         bool   `help:"Watch for changes and regenerate." short:"w"`
}

func (c *GenCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Watch {
		return c.watch(ctx, logger)
	}
	return c.generate(ctx, logger)
}

func (c *GenCmd) generate(ctx context.Context, logger *slog.Logger) error {
	g, err := c.build(logger)
	if err != nil {
		return err
	}
	result, err := g.ToDir(ctx, c.Out)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		logger.Warn("schema warning",
			slog.String("code", w.Code),
			slog.String("type", w.TypeName),
			slog.String("message", w.Message))
	}
	return nil
}

func (c *GenCmd) build(logger *slog.Logger) (*gen.Generator, error) {
	g, err := c.apply()
	if err != nil {
		return nil, err
	}
	g = g.WithImportBase(c.ImportBase).WithLogger(logger)
	if c.RuntimeImport != "" {
		g = g.WithRuntimeImport(c.RuntimeImport)
	}
	if c.AutoMigrate {
		g = g.WithAutoMigrate()
	}
	return g, nil
}

type CheckCmd struct {
	inputFlags
}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := c.apply()
	if err != nil {
		return err
	}
	// Generation stays in memory and is discarded; the placeholder
	// import base only satisfies config validation.
	result, err := g.WithImportBase("check").WithLogger(logger).Generate(ctx)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s (%s)\n", w.TypeName, w.Message, w.Code)
	}
	fmt.Printf("schema %s: %d types, %d warnings\n",
		result.Schema.Info.Name, len(result.Schema.Types), len(result.Warnings))
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("shiftgen"),
		kong.Description("Schema binding generator with auto-migration support."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx.Bind(logger)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
