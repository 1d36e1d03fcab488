// Command soagen generates structure-of-arrays containers for Go structs.
//
// Usage:
//
//	soagen [flags] [packages]
//
// Typically run through go generate:
//
//	//go:generate go run github.com/pavanmanishd/soa/cmd/soagen -type Particle -derive Clone,Debug
//
// Without -type, every struct marked with a //soa:derive directive is
// generated. Flags override the values of the -config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pavanmanishd/soa/internal/gen"
)

// Version information
const (
	Version = "0.1.0"
	Name    = "soagen"
)

type flags struct {
	types   string
	derive  string
	output  string
	config  string
	tags    string
	runtime string
	verbose bool
	version bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", Name, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	var f flags
	fs := flag.NewFlagSet(Name, flag.ContinueOnError)
	fs.StringVar(&f.types, "type", "", "comma-separated list of record type names")
	fs.StringVar(&f.derive, "derive", "", "comma-separated capabilities: Clone,Equal,Debug")
	fs.StringVar(&f.output, "output", "", "output file name; default <dir>/<type>_soa.go")
	fs.StringVar(&f.config, "config", "", "path to a soagen.yaml file")
	fs.StringVar(&f.tags, "tags", "", "comma-separated build tags")
	fs.StringVar(&f.runtime, "runtime", "", "import path of the runtime package")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [packages]\n", Name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if f.version {
		fmt.Printf("%s v%s\n", Name, Version)
		return nil
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := gen.NewTextLogger(level)

	sel, opts, output, err := resolve(f, logger)
	if err != nil {
		return err
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pkgs, err := gen.Load(ctx, patterns, sel, opts...)
	if err != nil {
		return err
	}
	if output != "" && len(pkgs) > 1 {
		return errors.New("-output requires a single package")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, p := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return write(p, output, logger.WithPackage(p.Path), opts)
		})
	}
	return g.Wait()
}

// resolve merges the config file and the flags.
func resolve(f flags, logger *gen.Logger) (gen.Selection, []gen.Option, string, error) {
	var (
		sel    gen.Selection
		output = f.output
		rt     = f.runtime
		tags   []string
	)
	if f.config != "" {
		cfg, err := gen.LoadConfig(f.config)
		if err != nil {
			return sel, nil, "", err
		}
		sel = cfg.Selection()
		if output == "" {
			output = cfg.Output
		}
		if rt == "" {
			rt = cfg.Runtime
		}
		tags = cfg.Tags
	}
	if f.types != "" {
		sel.Types = splitList(f.types)
	}
	if f.derive != "" {
		d, err := gen.ParseDerive(f.derive)
		if err != nil {
			return sel, nil, "", err
		}
		sel.Derive |= d
	}
	if f.tags != "" {
		tags = splitList(f.tags)
	}

	opts := []gen.Option{
		gen.WithLogger(logger),
		gen.WithRuntimePath(rt),
		gen.WithBuildTags(tags...),
	}
	return sel, opts, output, nil
}

func write(p *gen.Package, output string, logger *gen.Logger, opts []gen.Option) error {
	src, err := gen.Generate(p.File, opts...)
	if err != nil {
		return err
	}
	path := outputPath(p, output)
	err = os.WriteFile(path, src, 0o644)
	logger.LogWritten(path, len(p.File.Records), err)
	return err
}

func outputPath(p *gen.Package, output string) string {
	if output == "" {
		output = strings.ToLower(p.File.Records[0].Name) + "_soa.go"
	}
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(p.Dir, output)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
